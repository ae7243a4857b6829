package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/iiroan/moderntranslator/internal/ui"
	"github.com/iiroan/moderntranslator/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about translator.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Header("Modern Translator"))                     //nolint:errcheck
		fmt.Fprintf(out, "Version:    %s\n", app.version)                     //nolint:errcheck
		fmt.Fprintf(out, "Commit:     %s\n", version.Commit)                  //nolint:errcheck
		fmt.Fprintf(out, "Build Date: %s\n", version.BuildDate)               //nolint:errcheck
		fmt.Fprintf(out, "Platform:   %s\n", app.platform.Kind)               //nolint:errcheck
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())               //nolint:errcheck
		fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH) //nolint:errcheck
	},
}
