// Package view turns settings state into the rows of the settings screen and
// turns interactions on those rows into store mutations.
package view

import (
	"github.com/iiroan/moderntranslator/internal/catalog"
	"github.com/iiroan/moderntranslator/internal/platform"
	"github.com/iiroan/moderntranslator/internal/settings"
)

// RowKind is the widget a row renders as.
type RowKind int

const (
	KindLabel RowKind = iota
	KindToggle
	KindMenu
	KindLink
	KindAction
	KindDivider
)

// RowID identifies a row.
type RowID string

const (
	RowPrimaryColor      RowID = "primaryColor"
	RowDisplayLanguage   RowID = "displayLanguage"
	RowDarkMode          RowID = "darkMode"
	RowRealtime          RowID = "realtime"
	RowPreventScreenLock RowID = "preventScreenLock"
	RowTranslateOnEnter  RowID = "translateWhenPressingEnter"
	RowChinaMode         RowID = "chinaMode"
	RowRemoveAds         RowID = "removeAds"
	RowRestorePurchase   RowID = "restorePurchase"
	RowAdsActivated      RowID = "adsActivated"
	RowRateWindowsStore  RowID = "rateWindowsStore"
	RowRateMacAppStore   RowID = "rateMacAppStore"
	RowHelp              RowID = "help"
	RowWebsite           RowID = "website"
	RowVersion           RowID = "version"
)

// External destinations.
const (
	URIWindowsStoreReview = "ms-windows-store://review/?ProductId=9wzdncrcsg9k"
	URIMacAppStoreReview  = "macappstore://itunes.apple.com/app/id1176624652?mt=12"
	URISupport            = "https://moderntranslator.com/support"
	URIWebsite            = "https://moderntranslator.com"
)

// Option is one entry of a menu row.
type Option struct {
	ID       string
	Label    string
	Selected bool
}

// Row is a single line of the settings list.
type Row struct {
	ID        RowID
	Kind      RowKind
	Primary   string
	Secondary string
	Checked   bool
	Options   []Option
	URI       string
}

// Focusable reports whether the row reacts to input.
func (r Row) Focusable() bool {
	switch r.Kind {
	case KindToggle, KindMenu, KindLink, KindAction:
		return true
	}
	return false
}

// Input is everything the settings screen is a function of.
type Input struct {
	State    settings.State
	Platform platform.Descriptor
	Version  string
}

var toggleSettings = map[RowID]settings.Name{
	RowDarkMode:          settings.DarkMode,
	RowRealtime:          settings.Realtime,
	RowPreventScreenLock: settings.PreventScreenLock,
	RowTranslateOnEnter:  settings.TranslateWhenPressingEnter,
	RowChinaMode:         settings.ChinaMode,
}

// Build renders the rows for in. Rows whose platform does not match are
// omitted rather than disabled.
func Build(in Input) []Row {
	s := in.State.Strings
	rec := in.State.Settings
	rows := make([]Row, 0, 20)

	colorOptions := make([]Option, 0, len(catalog.ColorIDs()))
	for _, id := range catalog.ColorIDs() {
		colorOptions = append(colorOptions, Option{ID: id, Label: s.Get(id), Selected: id == rec.PrimaryColorID})
	}
	rows = append(rows, Row{
		ID:        RowPrimaryColor,
		Kind:      KindMenu,
		Primary:   s.Get("primaryColor"),
		Secondary: s.Get(rec.PrimaryColorID),
		Options:   colorOptions,
	})

	langOptions := make([]Option, 0, len(catalog.LanguageIDs()))
	for _, id := range catalog.LanguageIDs() {
		langOptions = append(langOptions, Option{ID: id, Label: catalog.Language(id).DisplayName, Selected: id == rec.DisplayLanguage})
	}
	rows = append(rows, Row{
		ID:        RowDisplayLanguage,
		Kind:      KindMenu,
		Primary:   s.Get("displayLanguage"),
		Secondary: catalog.Language(rec.DisplayLanguage).DisplayName,
		Options:   langOptions,
	})

	rows = append(rows,
		toggleRow(RowDarkMode, s.Get("darkMode"), "", rec.DarkMode),
		toggleRow(RowRealtime, s.Get("realtime"), "", rec.Realtime),
	)
	if in.Platform.PreventsScreenLock() {
		rows = append(rows, toggleRow(RowPreventScreenLock, s.Get("preventScreenLock"), "", rec.PreventScreenLock))
	}
	rows = append(rows,
		toggleRow(RowTranslateOnEnter, s.Get("translateWhenPressingEnter"), "", rec.TranslateWhenPressingEnter),
		toggleRow(RowChinaMode, s.Get("chinaMode"), s.Get("chinaModeDesc"), rec.ChinaMode),
		Row{Kind: KindDivider},
	)

	if in.Platform.HasWindowsStore() {
		if in.State.ShouldShowAd {
			rows = append(rows,
				Row{ID: RowRemoveAds, Kind: KindAction, Primary: s.Get("removeAds")},
				Row{ID: RowRestorePurchase, Kind: KindAction, Primary: s.Get("restorePurchase"), Secondary: s.Get("restorePurchaseDesc")},
			)
		} else {
			rows = append(rows, Row{ID: RowAdsActivated, Kind: KindLabel, Primary: s.Get("removeAds"), Secondary: s.Get("activated")})
		}
	}
	rows = append(rows, Row{Kind: KindDivider})

	if in.Platform.HasWindowsStore() {
		rows = append(rows, Row{ID: RowRateWindowsStore, Kind: KindLink, Primary: s.Get("rateWindowsStore"), URI: URIWindowsStoreReview})
	}
	if in.Platform.HasMacAppStore() {
		rows = append(rows, Row{ID: RowRateMacAppStore, Kind: KindLink, Primary: s.Get("rateMacAppStore"), URI: URIMacAppStoreReview})
	}
	rows = append(rows,
		Row{ID: RowHelp, Kind: KindLink, Primary: s.Get("help"), URI: URISupport},
		Row{ID: RowWebsite, Kind: KindLink, Primary: s.Get("website"), URI: URIWebsite},
		Row{Kind: KindDivider},
		Row{ID: RowVersion, Kind: KindLabel, Primary: s.Get("version") + " " + in.Version},
	)

	return rows
}

func toggleRow(id RowID, primary string, secondary string, checked bool) Row {
	return Row{ID: id, Kind: KindToggle, Primary: primary, Secondary: secondary, Checked: checked}
}

// Find returns the row with id.
func Find(rows []Row, id RowID) (Row, bool) {
	for _, row := range rows {
		if row.ID == id && row.Kind != KindDivider {
			return row, true
		}
	}
	return Row{}, false
}
