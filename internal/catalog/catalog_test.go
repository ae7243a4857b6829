package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsResolve(t *testing.T) {
	_, ok := LookupColor(DefaultColorID)
	assert.True(t, ok)

	_, ok = LookupLanguage(DefaultLanguageID)
	assert.True(t, ok)
}

func TestColorIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range ColorIDs() {
		require.False(t, seen[id], "duplicate color id %q", id)
		seen[id] = true

		pair := Color(id)
		assert.Equal(t, id, pair.ID)
		assert.NotEmpty(t, pair.Primary)
		assert.NotEmpty(t, pair.Accent)
	}
}

func TestUnknownIDsFallBack(t *testing.T) {
	assert.Equal(t, DefaultColorID, Color("chartreuse").ID)
	assert.Equal(t, DefaultLanguageID, Language("tlh").ID)

	_, ok := LookupColor("chartreuse")
	assert.False(t, ok)
}

func TestLanguagesHaveDisplayNames(t *testing.T) {
	ids := LanguageIDs()
	tags := LanguageTags()
	require.Len(t, tags, len(ids))

	for i, id := range ids {
		lang := Language(id)
		assert.NotEmpty(t, lang.DisplayName, id)
		assert.Equal(t, tags[i], lang.Tag)
	}
	assert.Equal(t, "English", Language("en").DisplayName)
}
