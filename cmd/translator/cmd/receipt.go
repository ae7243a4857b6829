package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iiroan/moderntranslator/internal/receipt"
	"github.com/iiroan/moderntranslator/internal/ui"
)

var receiptCmd = &cobra.Command{
	Use:   "receipt",
	Short: "Inspect store app receipts",
}

var receiptCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check whether a receipt qualifies for free ad removal",
	Long: `Parse an app receipt and apply the free ad-removal rule: purchases
made at or before the cutoff qualify.

Use - to read the receipt from stdin.

Examples:
  translator receipt check receipt.xml
  store-bridge receipt | translator receipt check -`,
	Args: cobra.ExactArgs(1),
	RunE: runReceiptCheck,
}

func init() {
	receiptCmd.AddCommand(receiptCheckCmd)
}

func runReceiptCheck(cmd *cobra.Command, args []string) error {
	data, err := readReceipt(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	outcome, r, err := receipt.Classify(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Title.Render("Receipt")) //nolint:errcheck
	printKV(out, "App", r.AppID)
	printKV(out, "License", r.LicenseType)
	purchased := "unreadable"
	if !r.PurchaseDate.IsZero() {
		purchased = r.PurchaseDate.UTC().Format(time.RFC3339Nano)
	}
	printKV(out, "Purchased", purchased)
	printKV(out, "Cutoff", receipt.Cutoff.Format(time.RFC3339))

	status := ui.StatusError.String()
	if outcome == receipt.OutcomeEligible {
		status = ui.StatusSuccess.String()
	}
	printKV(out, "Outcome", status+" "+outcome.String())
	return nil
}

func readReceipt(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading receipt: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading receipt: %w", err)
	}
	return string(data), nil
}
