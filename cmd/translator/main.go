// translator is the settings console for Modern Translator
package main

import (
	"fmt"
	"os"

	"github.com/iiroan/moderntranslator/cmd/translator/cmd"
	"github.com/iiroan/moderntranslator/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
