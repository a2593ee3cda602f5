package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_Get(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{
			name:    "Lectura 4m59s después de escribir - devuelve el payload cacheado",
			elapsed: 4*time.Minute + 59*time.Second,
			wantHit: true,
		},
		{
			name:    "Lectura 5m01s después de escribir - la entrada venció",
			elapsed: 5*time.Minute + 1*time.Second,
			wantHit: false,
		},
		{
			name:    "Lectura inmediata - devuelve el payload",
			elapsed: 0,
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := base
			store := New(5 * time.Minute)
			store.now = func() time.Time { return now }

			store.Set(Key("/sales/"), "payload")

			now = now.Add(tt.elapsed)

			got, ok := store.Get(Key("/sales/"))
			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.Equal(t, "payload", got)
			}
		})
	}
}

func TestStore_ExpiredEntryIsRemoved(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	store := New(5 * time.Minute)
	store.now = func() time.Time { return now }

	store.Set(Key("/sales/"), "payload")

	now = now.Add(6 * time.Minute)

	_, ok := store.Get(Key("/sales/"))
	assert.False(t, ok)

	// La entrada vencida no debe quedar en el mapa
	store.mu.RLock()
	_, still := store.entries[Key("/sales/")]
	store.mu.RUnlock()
	assert.False(t, still)
}

func TestStore_LastWriteWins(t *testing.T) {
	store := New(5 * time.Minute)

	store.Set(Key("/sales/", "tab=todas"), "primero")
	store.Set(Key("/sales/", "tab=todas"), "segundo")

	got, ok := store.Get(Key("/sales/", "tab=todas"))
	assert.True(t, ok)
	assert.Equal(t, "segundo", got)
}

func TestStore_Delete(t *testing.T) {
	store := New(5 * time.Minute)

	store.Set(Key("/course/"), "payload")
	store.Delete(Key("/course/"))

	_, ok := store.Get(Key("/course/"))
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "/sales/", Key("/sales/"))
	assert.Equal(t, "/sales/?from=2025-01-01&to=2025-01-31", Key("/sales/", "from=2025-01-01", "to=2025-01-31"))
}
