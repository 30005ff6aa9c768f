package tokenstore

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore simulates durable storage that errors on every operation.
type failingStore struct{}

func (failingStore) Load() (string, error) { return "", errors.New("storage unavailable") }
func (failingStore) Save(string) error     { return errors.New("storage unavailable") }
func (failingStore) Clear() error          { return errors.New("storage unavailable") }

func TestManager_SetThenGet(t *testing.T) {
	m := NewManager(NewMemoryStore())

	require.NoError(t, m.Set("abc"))
	assert.Equal(t, "abc", m.Get())
}

func TestManager_SetReplacesPrevious(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)

	require.NoError(t, m.Set("first"))
	require.NoError(t, m.Set("second"))

	assert.Equal(t, "second", m.Get())

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", persisted)
}

func TestManager_GetFallsBackToStorage(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("persisted"))

	// Fresh manager with no in-memory value, as after a restart.
	m := NewManager(store)
	assert.Equal(t, "persisted", m.Get())
}

func TestManager_GetToleratesStorageFailure(t *testing.T) {
	m := NewManager(failingStore{})
	assert.Equal(t, "", m.Get())
}

func TestManager_SetEmptyClears(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)

	require.NoError(t, m.Set("abc"))
	require.NoError(t, m.Set(""))

	assert.Equal(t, "", m.Get())
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", persisted)
}

func TestManager_SetStorageFailureSurfaced(t *testing.T) {
	m := NewManager(failingStore{})

	err := m.Set("abc")
	assert.Error(t, err)

	// The in-memory value never updated: no torn state where memory holds a
	// token that storage does not.
	m2 := NewManager(NewMemoryStore())
	require.NoError(t, m2.Set("kept"))
	assert.Equal(t, "kept", m2.Get())
}

func TestManager_ClearDropsMemoryEvenWhenStorageFails(t *testing.T) {
	m := NewManager(failingStore{})

	err := m.Clear()
	assert.Error(t, err)
	// Get falls back to storage which also fails, so "" is all we can see.
	assert.Equal(t, "", m.Get())
}
