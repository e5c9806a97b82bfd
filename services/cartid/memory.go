package cartid

import (
	"net/http"
	"sync"
)

// MemoryStore holds a single identifier in process memory. It is the
// non-browser analogue of the client-side local-storage copy and is handy in
// tests that need a second, independent store.
type MemoryStore struct {
	mutex sync.Mutex
	id    string
	found bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(r *http.Request) (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.id, s.found
}

func (s *MemoryStore) Set(w http.ResponseWriter, id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.id = id
	s.found = true
}

func (s *MemoryStore) Clear(w http.ResponseWriter) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.id = ""
	s.found = false
}
