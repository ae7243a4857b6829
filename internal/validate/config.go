package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/iiroan/moderntranslator/internal/config"
	"github.com/iiroan/moderntranslator/internal/store"
	"github.com/iiroan/moderntranslator/internal/version"
)

// Config validates the translator.yaml at path.
func Config(path string) Result {
	result := Result{Section: "Configuration"}
	name := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		result.AddItem(StatusPending, name, "not found, defaults in use")
		return result
	}

	loaded, err := config.Load(path)
	if err != nil {
		result.Fail(name, err)
		return result
	}
	if err := loaded.Validate(); err != nil {
		result.Fail(name, err)
		return result
	}
	result.AddItem(StatusSuccess, name, "")
	return result
}

// EnvFile checks the optional .env file with build-time values.
func EnvFile(path string) Result {
	result := Result{Section: "Environment"}
	name := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		result.AddItem(StatusPending, name, "not found")
		return result
	}

	values, err := godotenv.Read(path)
	if err != nil {
		result.Fail(name, err)
		return result
	}
	result.AddItem(StatusSuccess, name, fmt.Sprintf("%d values", len(values)))

	for _, key := range []string{version.EnvAppVersion, config.EnvStoreMode} {
		if _, ok := values[key]; !ok {
			result.AddItem(StatusPending, key, "not set")
			continue
		}
		result.AddItem(StatusSuccess, key, values[key])
	}
	if mode, ok := values[config.EnvStoreMode]; ok {
		if _, err := store.ParseMode(mode); err != nil {
			result.Fail(config.EnvStoreMode, err)
		}
	}
	return result
}
