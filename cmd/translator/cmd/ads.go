package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/moderntranslator/internal/purchase"
	"github.com/iiroan/moderntranslator/internal/ui"
)

var assumeYes bool

var adsCmd = &cobra.Command{
	Use:   "ads",
	Short: "Remove ads or restore an earlier purchase",
	Long: `Manage the remove-ads purchase.

In-app purchases go through the Windows Store. Use --platform windows
together with store.mode: simulated to exercise the flow elsewhere.

Examples:
  translator ads status
  translator ads remove --yes
  translator --platform windows ads restore`,
}

var adsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Buy the remove-ads add-on",
	Args:  cobra.NoArgs,
	RunE:  runAdsRemove,
}

var adsRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore remove-ads for early buyers from the app receipt",
	Args:  cobra.NoArgs,
	RunE:  runAdsRestore,
}

var adsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether ads are shown",
	Args:  cobra.NoArgs,
	RunE:  runAdsStatus,
}

func init() {
	adsRemoveCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation")
	adsRestoreCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation")

	adsCmd.AddCommand(adsRemoveCmd)
	adsCmd.AddCommand(adsRestoreCmd)
	adsCmd.AddCommand(adsStatusCmd)
}

func runAdsRemove(cmd *cobra.Command, args []string) error {
	return runPurchase(cmd, "removeAds", func(ctx context.Context) purchase.Result {
		return app.flow.RemoveAds(ctx, app.store.Snapshot().Strings)
	})
}

func runAdsRestore(cmd *cobra.Command, args []string) error {
	return runPurchase(cmd, "restorePurchase", func(ctx context.Context) purchase.Result {
		return app.flow.RestorePurchase(ctx, app.store.Snapshot().Strings)
	})
}

func runPurchase(cmd *cobra.Command, titleKey string, run func(context.Context) purchase.Result) error {
	if err := app.platform.RequireWindowsStore(""); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	strings := app.store.Snapshot().Strings

	if !app.store.Snapshot().ShouldShowAd {
		fmt.Fprintf(out, "%s %s: %s\n", ui.StatusSuccess.String(), strings.Get("removeAds"), strings.Get("activated")) //nolint:errcheck
		return nil
	}

	if !assumeYes && ui.IsInteractiveTerminal() {
		confirmed := true
		err := runForm(huh.NewConfirm().
			Title(strings.Get(titleKey)).
			Value(&confirmed))
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !confirmed {
			return nil
		}
	}

	var result purchase.Result
	err := ui.RunWithSpinner(cmd.Context(), strings.Get("processing"), func(ctx context.Context) error {
		result = run(ctx)
		return nil
	})
	if err != nil {
		return err
	}

	printNotifications(out, app.store.Notifications())
	return purchaseOutcome(out, result)
}

// purchaseOutcome reports result. Failures the user was already notified of
// still fail the command so scripts can tell.
func purchaseOutcome(out io.Writer, result purchase.Result) error {
	strings := app.store.Snapshot().Strings
	switch result.Kind {
	case purchase.KindActivated:
		fmt.Fprintf(out, "%s %s: %s\n", ui.StatusSuccess.String(), strings.Get("removeAds"), strings.Get("activated")) //nolint:errcheck
		return nil
	case purchase.KindFailed:
		return fmt.Errorf("purchase failed: %w", result.Err)
	case purchase.KindDeclined:
		return fmt.Errorf("purchase not completed: %s", result.Status)
	}
	return nil
}

func printNotifications(out io.Writer, messages []string) {
	for _, msg := range messages {
		fmt.Fprintln(out, ui.WarningStyle.Render(msg)) //nolint:errcheck
	}
}

func runAdsStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := app.store.Snapshot()

	fmt.Fprintln(out, ui.Title.Render("Ads")) //nolint:errcheck
	printKV(out, "Platform", string(app.platform.Kind))
	printKV(out, "Store", cfg.Store.Mode)
	printKV(out, "Windows Store", yesNo(app.platform.HasWindowsStore()))
	printKV(out, "Ads shown", yesNo(st.ShouldShowAd))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
