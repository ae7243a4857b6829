package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(State{Settings: Defaults(), ShouldShowAd: true})
}

func TestStoreLoadsStringsForLanguage(t *testing.T) {
	rec := Defaults()
	rec.DisplayLanguage = "vi"
	store := NewStore(State{Settings: rec})
	assert.Equal(t, "Cài đặt", store.Snapshot().Strings["settings"])
}

func TestStoreMutationsPublish(t *testing.T) {
	store := newTestStore()

	var seen []State
	store.Subscribe(func(st State) { seen = append(seen, st) })

	require.NoError(t, store.ToggleSetting(DarkMode))
	require.NoError(t, store.UpdateSetting(PrimaryColorID, "amber"))
	store.UpdateShouldShowAd(false)
	require.NoError(t, store.UpdateStrings("ja"))

	require.Len(t, seen, 4)
	last := seen[3]
	assert.True(t, last.Settings.DarkMode)
	assert.Equal(t, "amber", last.Settings.PrimaryColorID)
	assert.False(t, last.ShouldShowAd)
	assert.Equal(t, "設定", last.Strings["settings"])
	assert.Equal(t, last, store.Snapshot())
}

func TestStoreFailedMutationDoesNotPublish(t *testing.T) {
	store := newTestStore()
	before := store.Snapshot()

	calls := 0
	store.Subscribe(func(State) { calls++ })

	assert.ErrorIs(t, store.ToggleSetting(DisplayLanguage), ErrNotToggleable)
	assert.ErrorIs(t, store.UpdateSetting(PrimaryColorID, "nope"), ErrInvalidValue)
	assert.Error(t, store.UpdateStrings("tlh"))

	assert.Zero(t, calls)
	assert.Equal(t, before, store.Snapshot())
}

func TestStoreNotificationsDrain(t *testing.T) {
	store := newTestStore()
	store.OpenSnackbar("one")
	store.OpenSnackbar("two")

	assert.Equal(t, []string{"one", "two"}, store.Notifications())
	assert.Empty(t, store.Notifications())
}

func TestStoreConcurrentToggles(t *testing.T) {
	store := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.ToggleSetting(ChinaMode)
		}()
	}
	wg.Wait()

	assert.Equal(t, Defaults().ChinaMode, store.Snapshot().Settings.ChinaMode)
}
