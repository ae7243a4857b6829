package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iiroan/moderntranslator/internal/catalog"
	"github.com/iiroan/moderntranslator/internal/settings"
	"github.com/iiroan/moderntranslator/internal/ui"
	"github.com/iiroan/moderntranslator/internal/view"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change settings",
	Long: `Show and change the persisted app settings.

Examples:
  translator settings list
  translator settings get primaryColorId
  translator settings set displayLanguage ja
  translator settings toggle darkMode`,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:       "get <name>",
	Short:     "Print one setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: settingNames(),
	RunE:      runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> [value]",
	Short: "Change a setting (prompts when the value is omitted)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSettingsSet,
}

var settingsToggleCmd = &cobra.Command{
	Use:       "toggle <name>",
	Short:     "Flip a boolean setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: settingNames(),
	RunE:      runSettingsToggle,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsToggleCmd)
}

func settingNames() []string {
	names := settings.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, string(name))
	}
	return out
}

func runSettingsList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	rec := app.store.Snapshot().Settings

	fmt.Fprintln(out, ui.Title.Render("Settings")) //nolint:errcheck
	for _, name := range settings.Names() {
		value, err := rec.Get(name)
		if err != nil {
			return err
		}
		printKV(out, string(name), formatValue(value))
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	name, err := settings.ParseName(args[0])
	if err != nil {
		return err
	}
	value, err := app.store.Snapshot().Settings.Get(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatValue(value)) //nolint:errcheck
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	name, err := settings.ParseName(args[0])
	if err != nil {
		return err
	}

	var text string
	if len(args) == 2 {
		text = args[1]
	} else {
		if !ui.IsInteractiveTerminal() {
			return fmt.Errorf("a value for %s is required in non-interactive mode", name)
		}
		text, err = promptSettingValue(name)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	value, err := settings.ParseValue(name, text)
	if err != nil {
		return err
	}
	if err := applySetting(name, value); err != nil {
		return err
	}

	logger.Debug("setting updated", "name", name, "value", value)
	printUpdated(cmd.OutOrStdout(), name)
	return nil
}

func runSettingsToggle(cmd *cobra.Command, args []string) error {
	name, err := settings.ParseName(args[0])
	if err != nil {
		return err
	}
	if err := app.store.ToggleSetting(name); err != nil {
		return err
	}
	printUpdated(cmd.OutOrStdout(), name)
	return nil
}

// applySetting routes menu settings through the view handler so a display
// language change also swaps the string table.
func applySetting(name settings.Name, value any) error {
	handler := view.Handler{Dispatcher: app.store}
	switch name {
	case settings.PrimaryColorID:
		_, err := handler.Select(app.store.Snapshot(), view.RowPrimaryColor, value.(string))
		return err
	case settings.DisplayLanguage:
		_, err := handler.Select(app.store.Snapshot(), view.RowDisplayLanguage, value.(string))
		return err
	}
	return app.store.UpdateSetting(name, value)
}

func promptSettingValue(name settings.Name) (string, error) {
	st := app.store.Snapshot()
	current, err := st.Settings.Get(name)
	if err != nil {
		return "", err
	}

	if name.IsBool() {
		enabled := current.(bool)
		err := runForm(huh.NewConfirm().
			Title(string(name)).
			Affirmative("On").
			Negative("Off").
			Value(&enabled))
		return formatValue(enabled), err
	}

	var options []huh.Option[string]
	switch name {
	case settings.PrimaryColorID:
		for _, id := range catalog.ColorIDs() {
			options = append(options, huh.NewOption(st.Strings.Get(id), id))
		}
	case settings.DisplayLanguage:
		for _, id := range catalog.LanguageIDs() {
			options = append(options, huh.NewOption(catalog.Language(id).DisplayName, id))
		}
	}

	choice := current.(string)
	err = runForm(huh.NewSelect[string]().
		Title(string(name)).
		Options(options...).
		Value(&choice))
	return choice, err
}

func runForm(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(ui.HuhTheme()).
		WithKeyMap(ui.HuhKeyMap()).
		Run()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	}
	return fmt.Sprintf("%v", value)
}

func printUpdated(out io.Writer, name settings.Name) {
	value, err := app.store.Snapshot().Settings.Get(name)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "%s %s = %s\n", ui.StatusSuccess.String(), name, formatValue(value)) //nolint:errcheck
}

func printKV(out io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Width(28).Foreground(ui.Muted)
	fmt.Fprintf(out, "  %s %s\n", keyStyle.Render(key+":"), value) //nolint:errcheck
}
