package validate

import (
	"fmt"

	"github.com/iiroan/moderntranslator/internal/catalog"
	"github.com/iiroan/moderntranslator/internal/i18n"
)

// Strings checks that every display language ships a complete table.
func Strings() Result {
	result := Result{Section: "Strings"}

	for _, id := range catalog.LanguageIDs() {
		table, err := i18n.Load(id)
		if err != nil {
			result.Fail(id, err)
			continue
		}
		missing := 0
		for _, key := range i18n.Keys {
			if _, ok := table[key]; !ok {
				missing++
			}
		}
		if missing > 0 {
			result.Warn(id, fmt.Sprintf("%d strings fall back to English", missing))
			continue
		}
		result.AddItem(StatusSuccess, id, catalog.Language(id).DisplayName)
	}
	return result
}
