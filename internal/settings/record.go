// Package settings holds the preferences record and the store that serialises its mutation.
package settings

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iiroan/moderntranslator/internal/catalog"
)

// Name identifies a setting.
type Name string

const (
	DarkMode                   Name = "darkMode"
	PrimaryColorID             Name = "primaryColorId"
	PreventScreenLock          Name = "preventScreenLock"
	TranslateWhenPressingEnter Name = "translateWhenPressingEnter"
	Realtime                   Name = "realtime"
	ChinaMode                  Name = "chinaMode"
	DisplayLanguage            Name = "displayLanguage"
)

var (
	ErrUnknownSetting = errors.New("unknown setting")
	ErrNotToggleable  = errors.New("setting is not a boolean")
	ErrInvalidValue   = errors.New("invalid setting value")
)

// Names returns every setting name in display order.
func Names() []Name {
	return []Name{
		PrimaryColorID,
		DisplayLanguage,
		DarkMode,
		Realtime,
		PreventScreenLock,
		TranslateWhenPressingEnter,
		ChinaMode,
	}
}

// ParseName validates a setting name.
func ParseName(s string) (Name, error) {
	for _, name := range Names() {
		if string(name) == s {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSetting, s)
}

// IsBool reports whether the setting holds a boolean.
func (n Name) IsBool() bool {
	switch n {
	case DarkMode, PreventScreenLock, TranslateWhenPressingEnter, Realtime, ChinaMode:
		return true
	}
	return false
}

// Record is an immutable snapshot of all settings.
type Record struct {
	DarkMode                   bool   `yaml:"dark_mode"`
	PrimaryColorID             string `yaml:"primary_color_id"`
	PreventScreenLock          bool   `yaml:"prevent_screen_lock"`
	TranslateWhenPressingEnter bool   `yaml:"translate_when_pressing_enter"`
	Realtime                   bool   `yaml:"realtime"`
	ChinaMode                  bool   `yaml:"china_mode"`
	DisplayLanguage            string `yaml:"display_language"`
}

// Defaults returns the record a fresh install starts with.
func Defaults() Record {
	return Record{
		DarkMode:                   false,
		PrimaryColorID:             catalog.DefaultColorID,
		PreventScreenLock:          false,
		TranslateWhenPressingEnter: true,
		Realtime:                   true,
		ChinaMode:                  false,
		DisplayLanguage:            catalog.DefaultLanguageID,
	}
}

// Get returns the value of a setting as bool or string.
func (r Record) Get(name Name) (any, error) {
	switch name {
	case DarkMode:
		return r.DarkMode, nil
	case PrimaryColorID:
		return r.PrimaryColorID, nil
	case PreventScreenLock:
		return r.PreventScreenLock, nil
	case TranslateWhenPressingEnter:
		return r.TranslateWhenPressingEnter, nil
	case Realtime:
		return r.Realtime, nil
	case ChinaMode:
		return r.ChinaMode, nil
	case DisplayLanguage:
		return r.DisplayLanguage, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
}

// Bool returns a boolean setting.
func (r Record) Bool(name Name) (bool, error) {
	if !name.IsBool() {
		if _, err := r.Get(name); err != nil {
			return false, err
		}
		return false, fmt.Errorf("%w: %q", ErrNotToggleable, name)
	}
	v, err := r.Get(name)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Toggle returns a copy of the record with a boolean setting flipped.
func (r Record) Toggle(name Name) (Record, error) {
	current, err := r.Bool(name)
	if err != nil {
		return r, err
	}
	return r.Update(name, !current)
}

// Update returns a copy of the record with a setting replaced.
// Boolean settings take a bool; color and language take a catalog id.
func (r Record) Update(name Name, value any) (Record, error) {
	if name.IsBool() {
		b, ok := value.(bool)
		if !ok {
			return r, fmt.Errorf("%w: %q expects a boolean, got %T", ErrInvalidValue, name, value)
		}
		switch name {
		case DarkMode:
			r.DarkMode = b
		case PreventScreenLock:
			r.PreventScreenLock = b
		case TranslateWhenPressingEnter:
			r.TranslateWhenPressingEnter = b
		case Realtime:
			r.Realtime = b
		case ChinaMode:
			r.ChinaMode = b
		}
		return r, nil
	}

	s, ok := value.(string)
	if !ok {
		if _, err := r.Get(name); err != nil {
			return r, err
		}
		return r, fmt.Errorf("%w: %q expects a string, got %T", ErrInvalidValue, name, value)
	}

	switch name {
	case PrimaryColorID:
		if _, ok := catalog.LookupColor(s); !ok {
			return r, fmt.Errorf("%w: unknown color %q", ErrInvalidValue, s)
		}
		r.PrimaryColorID = s
	case DisplayLanguage:
		if _, ok := catalog.LookupLanguage(s); !ok {
			return r, fmt.Errorf("%w: unknown display language %q", ErrInvalidValue, s)
		}
		r.DisplayLanguage = s
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	return r, nil
}

// ParseValue converts command-line text into a typed value for name.
// Boolean settings accept only "true" and "false".
func ParseValue(name Name, text string) (any, error) {
	if !name.IsBool() {
		return text, nil
	}
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, fmt.Errorf("%w: %q expects true or false, got %s", ErrInvalidValue, name, strconv.Quote(text))
}

// Validate checks that the catalog references resolve.
func (r Record) Validate() error {
	if _, ok := catalog.LookupColor(r.PrimaryColorID); !ok {
		return fmt.Errorf("%w: unknown color %q", ErrInvalidValue, r.PrimaryColorID)
	}
	if _, ok := catalog.LookupLanguage(r.DisplayLanguage); !ok {
		return fmt.Errorf("%w: unknown display language %q", ErrInvalidValue, r.DisplayLanguage)
	}
	return nil
}

// Normalize replaces unresolvable catalog references with defaults.
func (r Record) Normalize() Record {
	if _, ok := catalog.LookupColor(r.PrimaryColorID); !ok {
		r.PrimaryColorID = catalog.DefaultColorID
	}
	if _, ok := catalog.LookupLanguage(r.DisplayLanguage); !ok {
		r.DisplayLanguage = catalog.DefaultLanguageID
	}
	return r
}
