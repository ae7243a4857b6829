// Package catalog holds the static lookup tables that settings values point into.
package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ColorPair is a primary/accent color combination used to theme the app.
type ColorPair struct {
	ID      string
	Primary string
	Accent  string
}

// DisplayLanguage is a language the UI strings are available in.
type DisplayLanguage struct {
	ID          string
	Tag         language.Tag
	DisplayName string
}

const (
	DefaultColorID    = "indigo"
	DefaultLanguageID = "en"
)

var colorPairs = []ColorPair{
	{ID: "pinkRed", Primary: "#E91E63", Accent: "#F44336"},
	{ID: "indigo", Primary: "#3F51B5", Accent: "#FF4081"},
	{ID: "blue", Primary: "#2196F3", Accent: "#FF5722"},
	{ID: "cyan", Primary: "#00BCD4", Accent: "#FFC107"},
	{ID: "teal", Primary: "#009688", Accent: "#FF9800"},
	{ID: "green", Primary: "#4CAF50", Accent: "#E91E63"},
	{ID: "amber", Primary: "#FFC107", Accent: "#3F51B5"},
	{ID: "orange", Primary: "#FF9800", Accent: "#2196F3"},
	{ID: "deepOrange", Primary: "#FF5722", Accent: "#00BCD4"},
	{ID: "blueGrey", Primary: "#607D8B", Accent: "#FF5252"},
}

var displayLanguages = []DisplayLanguage{
	newDisplayLanguage("en", language.English),
	newDisplayLanguage("vi", language.Vietnamese),
	newDisplayLanguage("zh", language.SimplifiedChinese),
	newDisplayLanguage("ja", language.Japanese),
}

func newDisplayLanguage(id string, tag language.Tag) DisplayLanguage {
	name := display.Self.Name(tag)
	if name == "" {
		name = id
	}
	return DisplayLanguage{ID: id, Tag: tag, DisplayName: name}
}

// ColorIDs returns the color pair ids in menu order.
func ColorIDs() []string {
	ids := make([]string, len(colorPairs))
	for i, pair := range colorPairs {
		ids[i] = pair.ID
	}
	return ids
}

// LookupColor returns the color pair for id.
func LookupColor(id string) (ColorPair, bool) {
	for _, pair := range colorPairs {
		if pair.ID == id {
			return pair, true
		}
	}
	return ColorPair{}, false
}

// Color returns the color pair for id, falling back to the default pair.
func Color(id string) ColorPair {
	if pair, ok := LookupColor(id); ok {
		return pair
	}
	pair, _ := LookupColor(DefaultColorID)
	return pair
}

// LanguageIDs returns the display language ids in menu order.
func LanguageIDs() []string {
	ids := make([]string, len(displayLanguages))
	for i, lang := range displayLanguages {
		ids[i] = lang.ID
	}
	return ids
}

// LookupLanguage returns the display language for id.
func LookupLanguage(id string) (DisplayLanguage, bool) {
	for _, lang := range displayLanguages {
		if lang.ID == id {
			return lang, true
		}
	}
	return DisplayLanguage{}, false
}

// Language returns the display language for id, falling back to English.
func Language(id string) DisplayLanguage {
	if lang, ok := LookupLanguage(id); ok {
		return lang
	}
	lang, _ := LookupLanguage(DefaultLanguageID)
	return lang
}

// LanguageTags returns the tags of all display languages in menu order.
func LanguageTags() []language.Tag {
	tags := make([]language.Tag, len(displayLanguages))
	for i, lang := range displayLanguages {
		tags[i] = lang.Tag
	}
	return tags
}
