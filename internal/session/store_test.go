package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLastWriteWins(t *testing.T) {
	store := NewStore()

	store.Save("s1", Snapshot{Name: "baseline", RULDays: 30, SavedAt: time.Unix(1, 0)})
	store.Save("s1", Snapshot{Name: "baseline", RULDays: 4, SavedAt: time.Unix(2, 0)})

	snap, ok := store.Get("s1", "baseline")
	require.True(t, ok)
	assert.Equal(t, 4, snap.RULDays, "second write replaces the first")

	assert.Len(t, store.List("s1"), 1)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := NewStore()

	store.Save("s1", Snapshot{Name: "baseline"})
	store.Save("s2", Snapshot{Name: "rush-order"})

	_, ok := store.Get("s1", "rush-order")
	assert.False(t, ok)
	_, ok = store.Get("s2", "rush-order")
	assert.True(t, ok)
}

func TestStoreListOrderedBySaveTime(t *testing.T) {
	store := NewStore()

	store.Save("s1", Snapshot{Name: "later", SavedAt: time.Unix(20, 0)})
	store.Save("s1", Snapshot{Name: "earlier", SavedAt: time.Unix(10, 0)})

	snaps := store.List("s1")
	require.Len(t, snaps, 2)
	assert.Equal(t, "earlier", snaps[0].Name)
	assert.Equal(t, "later", snaps[1].Name)
}

func TestStoreClearEndsSession(t *testing.T) {
	store := NewStore()

	store.Save("s1", Snapshot{Name: "baseline"})
	store.Clear("s1")

	_, ok := store.Get("s1", "baseline")
	assert.False(t, ok)
	assert.Empty(t, store.List("s1"))

	// clearing an unknown session is a no-op
	store.Clear("never-existed")
}
