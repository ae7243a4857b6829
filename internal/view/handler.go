package view

import (
	"fmt"

	"github.com/iiroan/moderntranslator/internal/settings"
)

// PurchaseAction names a purchase flow a row starts.
type PurchaseAction string

const (
	PurchaseNone    PurchaseAction = ""
	PurchaseRemove  PurchaseAction = "remove-ads"
	PurchaseRestore PurchaseAction = "restore-purchase"
)

// Effect is what the host must do after an interaction besides the store
// mutations already issued.
type Effect struct {
	// Reload re-renders the whole screen with a fresh theme.
	Reload bool
	// ReloadStrings is the display language whose strings were swapped in.
	ReloadStrings string
	// OpenURI is handed to the OS URI handler.
	OpenURI string
	// Purchase starts a purchase flow.
	Purchase PurchaseAction
}

// Handler applies interactions to a dispatcher.
type Handler struct {
	Dispatcher settings.Dispatcher
}

// Select handles choosing optionID from the menu row id.
func (h Handler) Select(current settings.State, id RowID, optionID string) (Effect, error) {
	switch id {
	case RowPrimaryColor:
		if err := h.Dispatcher.UpdateSetting(settings.PrimaryColorID, optionID); err != nil {
			return Effect{}, err
		}
		return Effect{Reload: true}, nil
	case RowDisplayLanguage:
		if optionID == current.Settings.DisplayLanguage {
			return Effect{}, nil
		}
		if err := h.Dispatcher.UpdateSetting(settings.DisplayLanguage, optionID); err != nil {
			return Effect{}, err
		}
		if err := h.Dispatcher.UpdateStrings(optionID); err != nil {
			return Effect{}, err
		}
		return Effect{ReloadStrings: optionID}, nil
	}
	return Effect{}, fmt.Errorf("row %q is not a menu", id)
}

// Toggle handles flipping the toggle row id.
func (h Handler) Toggle(id RowID) (Effect, error) {
	name, ok := toggleSettings[id]
	if !ok {
		return Effect{}, fmt.Errorf("row %q is not a toggle", id)
	}
	if err := h.Dispatcher.ToggleSetting(name); err != nil {
		return Effect{}, err
	}
	return Effect{Reload: id == RowDarkMode}, nil
}

// Activate handles clicking a link or action row.
func (h Handler) Activate(row Row) (Effect, error) {
	switch row.Kind {
	case KindLink:
		return Effect{OpenURI: row.URI}, nil
	case KindAction:
		switch row.ID {
		case RowRemoveAds:
			return Effect{Purchase: PurchaseRemove}, nil
		case RowRestorePurchase:
			return Effect{Purchase: PurchaseRestore}, nil
		}
	case KindToggle:
		return h.Toggle(row.ID)
	}
	return Effect{}, fmt.Errorf("row %q cannot be activated", row.ID)
}
