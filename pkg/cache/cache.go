// Package cache implementa la memoización con TTL de las respuestas del
// core. Cada clave combina endpoint y parámetros para que dos vistas nunca
// compartan entrada por accidente.
package cache

import (
	"strings"
	"sync"
	"time"
)

const DefaultTTL = 5 * time.Minute

type entry struct {
	payload   any
	timestamp time.Time
}

// Store es un cache en memoria con expiración por antigüedad. No hay
// política de desalojo más allá del TTL: las claves son pocas (una por
// vista) y la última escritura gana.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Key arma la clave (endpoint, params) del cache
func Key(endpoint string, params ...string) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + strings.Join(params, "&")
}

// Get devuelve el payload si la entrada existe y es más joven que el TTL.
// Una entrada vencida se elimina y cuenta como ausente.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if s.now().Sub(e.timestamp) > s.ttl {
		s.mu.Lock()
		// Revisar de nuevo bajo el lock de escritura: otro Set pudo renovarla
		if current, still := s.entries[key]; still && s.now().Sub(current.timestamp) > s.ttl {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.payload, true
}

func (s *Store) Set(key string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		payload:   payload,
		timestamp: s.now(),
	}
}

// Delete invalida una entrada; lo usa el botón "Actualizar datos" del panel
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}
