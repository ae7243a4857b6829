// Package i18n provides the localized string tables for the settings screen.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/iiroan/moderntranslator/internal/catalog"
)

// Strings maps a message key to its localized text.
type Strings map[string]string

// Get returns the text for key, falling back to English and then to the key.
func (s Strings) Get(key string) string {
	if text, ok := s[key]; ok && text != "" {
		return text
	}
	if text, ok := englishStrings[key]; ok {
		return text
	}
	return key
}

// Keys every table must provide.
var Keys = []string{
	"settings",
	"primaryColor",
	"change",
	"displayLanguage",
	"darkMode",
	"realtime",
	"preventScreenLock",
	"translateWhenPressingEnter",
	"chinaMode",
	"chinaModeDesc",
	"removeAds",
	"restorePurchase",
	"restorePurchaseDesc",
	"activated",
	"rateWindowsStore",
	"rateMacAppStore",
	"help",
	"website",
	"version",
	"somethingWentWrong",
	"notQualified",
	"processing",
	"pinkRed",
	"indigo",
	"blue",
	"cyan",
	"teal",
	"green",
	"amber",
	"orange",
	"deepOrange",
	"blueGrey",
}

var tables = map[string]Strings{
	"en": englishStrings,
	"vi": vietnameseStrings,
	"zh": chineseStrings,
	"ja": japaneseStrings,
}

// Load returns a copy of the string table for a display language id.
func Load(langID string) (Strings, error) {
	table, ok := tables[langID]
	if !ok {
		return nil, fmt.Errorf("no strings for display language %q", langID)
	}
	out := make(Strings, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out, nil
}

// MustLoad is like Load but falls back to English for unknown ids.
func MustLoad(langID string) Strings {
	s, err := Load(langID)
	if err != nil {
		s, _ = Load(catalog.DefaultLanguageID)
	}
	return s
}

var matcher = language.NewMatcher(catalog.LanguageTags())

// Detect picks a display language id from the locale environment variables.
func Detect() string {
	return DetectFrom(os.Getenv)
}

// DetectFrom is Detect with an injectable environment lookup.
func DetectFrom(getenv func(string) string) string {
	envVars := []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

	for _, envVar := range envVars {
		value := getenv(envVar)
		if value == "" {
			continue
		}
		for _, candidate := range strings.Split(value, ":") {
			tag, ok := parseLocale(candidate)
			if !ok {
				continue
			}
			_, index, confidence := matcher.Match(tag)
			if confidence == language.No {
				continue
			}
			return catalog.LanguageIDs()[index]
		}
	}
	return catalog.DefaultLanguageID
}

// parseLocale turns a POSIX locale such as "vi_VN.UTF-8" into a language tag.
func parseLocale(locale string) (language.Tag, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
