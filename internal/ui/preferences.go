package ui

import (
	"github.com/iiroan/moderntranslator/internal/settings"
)

// Preferences controls runtime UI settings.
type Preferences struct {
	ColorID string
	Dark    bool
	Dense   bool
	NoColor bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{
	ColorID: DefaultPalette().Name,
}

// PreferencesFrom derives UI preferences from the settings record.
func PreferencesFrom(rec settings.Record, dense bool, noColor bool) Preferences {
	return Preferences{
		ColorID: rec.PrimaryColorID,
		Dark:    rec.DarkMode,
		Dense:   dense,
		NoColor: noColor,
	}
}

// ApplyPreferences updates UI preferences and re-themes everything.
func ApplyPreferences(p Preferences) {
	CurrentPreferences = p
	palette := PaletteFor(p.ColorID, p.Dark)
	palette.Disabled = p.NoColor
	ApplyPalette(palette)
}
