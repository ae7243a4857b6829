package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iiroan/moderntranslator/internal/ui"
	"github.com/iiroan/moderntranslator/internal/validate"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, store setup and string tables",
	Long: `Check the installation:
  - Configuration (translator.yaml)
  - Build-time values (.env)
  - Store gateway (simulator file or bridge command)
  - String tables for every display language

Examples:
  translator doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ui.StartScreen(out, "DOCTOR", "Checking configuration, store setup and string tables")

	results := []validate.Result{
		validate.Config(cfgPath),
		validate.EnvFile(envFile),
		validate.Store(cfg.Store),
		validate.Strings(),
	}

	var errors, warnings int
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(out) //nolint:errcheck
		}
		printResult(out, result)
		errors += len(result.Errors)
		warnings += len(result.Warnings)
	}

	fmt.Fprintln(out)                                          //nolint:errcheck
	fmt.Fprintln(out, ui.HintStyle.Render("Config: "+cfgPath)) //nolint:errcheck
	if errors > 0 {
		fmt.Fprintln(out, ui.ErrorBox.Render(fmt.Sprintf("%d errors, %d warnings", errors, warnings))) //nolint:errcheck
		return fmt.Errorf("doctor found %d errors", errors)
	}
	if warnings > 0 {
		fmt.Fprintln(out, ui.InfoBox.Render(fmt.Sprintf("%d warnings", warnings))) //nolint:errcheck
		return nil
	}
	fmt.Fprintln(out, ui.SuccessBox.Render("All checks passed")) //nolint:errcheck
	return nil
}

func printResult(out io.Writer, result validate.Result) {
	fmt.Fprintln(out, ui.Title.Render(result.Section)) //nolint:errcheck
	for _, item := range result.Items {
		line := fmt.Sprintf("  %s %s", statusIcon(item.Status), item.Name)
		if item.Details != "" {
			line += " " + ui.MutedStyle.Render("("+item.Details+")")
		}
		fmt.Fprintln(out, line) //nolint:errcheck
	}
}

func statusIcon(status validate.Status) string {
	switch status {
	case validate.StatusSuccess:
		return ui.StatusSuccess.String()
	case validate.StatusError:
		return ui.StatusError.String()
	case validate.StatusWarning:
		return ui.WarningStyle.Render("!")
	default:
		return ui.StatusPending.String()
	}
}
