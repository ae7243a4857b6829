package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/moderntranslator/internal/config"
	"github.com/iiroan/moderntranslator/internal/i18n"
	"github.com/iiroan/moderntranslator/internal/opener"
	"github.com/iiroan/moderntranslator/internal/platform"
	"github.com/iiroan/moderntranslator/internal/purchase"
	"github.com/iiroan/moderntranslator/internal/settings"
	"github.com/iiroan/moderntranslator/internal/store"
	"github.com/iiroan/moderntranslator/internal/ui"
	"github.com/iiroan/moderntranslator/internal/version"
	"github.com/iiroan/moderntranslator/internal/view"
)

var (
	verbose      bool
	quiet        bool
	noColor      bool
	cfgFile      string
	envFile      string
	platformName string
	logger       *log.Logger
	cfg          *config.Config // file values with env and flag overrides
	saved        *config.Config // file values only, written back on change
	persist      bool
	cfgPath      string
	app          *application
)

// application holds everything built once at startup.
type application struct {
	store    *settings.Store
	gateway  store.Gateway
	flow     *purchase.Flow
	platform platform.Descriptor
	version  string
}

var rootCmd = &cobra.Command{
	Use:   "translator",
	Short: "Settings console for Modern Translator",
	Long: `translator shows and edits the settings of Modern Translator.

Run without arguments to open the interactive settings screen, or use the
subcommands to script individual settings and purchases.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if err := config.LoadEnvFile(envFile); err != nil {
			logger.Warn("could not load env file", "path", envFile, "error", err)
		}

		if cmd.Name() == "help" {
			return nil
		}
		if err := loadConfig(); err != nil {
			return err
		}

		applyUISettings()
		setupLogger()

		if err := buildApplication(); err != nil {
			if cmd == doctorCmd {
				logger.Warn("startup failed, running checks anyway", "error", err)
				return nil
			}
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRootTUI(cmd)
	},
}

func runRootTUI(cmd *cobra.Command) error {
	err := ui.RunSettings(cmd.Context(), ui.SettingsDeps{
		Store:    app.store,
		Flow:     app.flow,
		Opener:   opener.System{Logger: logger},
		Platform: app.platform,
		Version:  app.version,
		Logger:   logger,
		Dense:    cfg.UI.Dense,
		NoColor:  cfg.UI.NoColor || noColor,
	})
	if errors.Is(err, ui.ErrNotInteractive) {
		return printSettingsScreen(cmd)
	}
	return err
}

func printSettingsScreen(cmd *cobra.Command) error {
	st := app.store.Snapshot()
	rows := view.Build(view.Input{State: st, Platform: app.platform, Version: app.version})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Header(st.Strings.Get("settings"))) //nolint:errcheck
	ui.PrintRows(out, rows, 80)
	return nil
}

func loadConfig() error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	cfgPath = path

	_, statErr := os.Stat(path)
	firstRun := os.IsNotExist(statErr)

	loaded, err := config.Load(path)
	persist = err == nil
	if err != nil {
		logger.Warn("could not load config, using defaults without saving", "path", path, "error", err)
		loaded = config.DefaultConfig()
	}
	if firstRun {
		loaded.Settings.DisplayLanguage = i18n.Detect()
		logger.Debug("first run, detected display language", "lang", loaded.Settings.DisplayLanguage)
	}

	if err := loaded.Validate(); err != nil {
		logger.Warn("invalid config values", "error", err)
		loaded.Settings = loaded.Settings.Normalize()
	}

	saved = loaded
	cfg = loaded.WithOverrides(os.Getenv, platformName)
	return nil
}

func buildApplication() error {
	desc, err := platform.Resolve(cfg.Platform)
	if err != nil {
		return err
	}

	st := settings.NewStore(cfg.State())
	st.Subscribe(func(state settings.State) {
		saved.SetState(state)
		if !persist {
			logger.Debug("config unreadable, change kept in memory", "path", cfgPath)
			return
		}
		if err := saved.Save(cfgPath); err != nil {
			logger.Error("could not save settings", "path", cfgPath, "error", err)
		}
	})

	gateway, err := store.New(cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("setting up store: %w", err)
	}

	app = &application{
		store:    st,
		gateway:  gateway,
		flow:     purchase.NewFlow(gateway, st, logger),
		platform: desc,
		version:  version.Resolve(),
	}

	logger.Debug("application ready",
		"platform", desc.Kind,
		"store", cfg.Store.Mode,
		"config", cfgPath,
		"version", app.version,
	)
	return nil
}

// Execute runs the command tree. Interrupts cancel in-flight purchases.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: <user config dir>/translator/translator.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file with build-time values")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "", "Platform override (windows, electron, other)")

	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(adsCmd)
	rootCmd.AddCommand(receiptCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyUISettings() {
	if cfg == nil {
		ui.ApplyPreferences(ui.Preferences{NoColor: noColor})
		return
	}
	ui.ApplyPreferences(ui.PreferencesFrom(cfg.Settings, cfg.UI.Dense, cfg.UI.NoColor || noColor))
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
