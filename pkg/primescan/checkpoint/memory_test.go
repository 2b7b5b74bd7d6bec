package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryStore_SaveLoad tests the roundtrip and copy semantics.
func TestMemoryStore_SaveLoad(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "fresh store has no checkpoint")

	p := Progress{Count: 99, ElapsedSeconds: 2.5, Timestamp: Now()}
	require.NoError(t, store.Save(p))

	got, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p, *got)

	// Mutating the returned copy does not affect the store.
	got.Count = 0
	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 99, again.Count)
}

// TestMemoryStore_Saves tests the save counter.
func TestMemoryStore_Saves(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	assert.Zero(t, store.Saves())
	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Save(Progress{Count: i, Timestamp: Now()}))
	}
	assert.Equal(t, 3, store.Saves())
}

// TestMemoryStore_Clear tests removal.
func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save(Progress{Count: 5, Timestamp: Now()}))
	require.NoError(t, store.Clear())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestMemoryStore_Closed tests the closed-store guard.
func TestMemoryStore_Closed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.Save(Progress{}), ErrStoreClosed)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, store.Clear(), ErrStoreClosed)
}
