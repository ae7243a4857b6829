package validate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/iiroan/moderntranslator/internal/exec"
	"github.com/iiroan/moderntranslator/internal/store"
)

// Store checks that the configured purchase gateway can be built.
func Store(cfg store.Config) Result {
	result := Result{Section: "Store"}

	mode, err := store.ParseMode(cfg.Mode)
	if err != nil {
		result.Fail("mode", err)
		return result
	}
	result.AddItem(StatusSuccess, "mode", string(mode))

	if mode == store.ModeProduction {
		checkBridge(&result, cfg.Bridge)
		return result
	}

	if cfg.Simulator == "" {
		result.AddItem(StatusSuccess, "simulator", "built-in defaults")
		return result
	}
	sim, err := store.LoadSimulatorConfig(cfg.Simulator)
	if err != nil {
		result.Fail("simulator", err)
		return result
	}
	if _, err := store.NewSimulator(sim, nil); err != nil {
		result.Fail("simulator", err)
		return result
	}
	result.AddItem(StatusSuccess, "simulator", filepath.Base(cfg.Simulator))
	return result
}

func checkBridge(result *Result, cfg store.BridgeConfig) {
	if !exec.CheckCommand(cfg.Command) {
		result.Warn(cfg.Command, "not found in PATH")
	} else {
		result.AddItem(StatusSuccess, cfg.Command, "")
	}

	for _, arg := range cfg.Args {
		if !strings.HasSuffix(strings.ToLower(arg), ".ps1") {
			continue
		}
		if _, err := os.Stat(arg); err != nil {
			result.Warn(arg, "helper script not found")
			continue
		}
		result.AddItem(StatusSuccess, arg, "")
	}
}
