package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
	"github.com/GSMProject-Team/bizzone.kz/internal/ports"
)

// ErrSaveFailed is returned for every write while failure injection is on.
var ErrSaveFailed = errors.New("memory store: save failed")

// Store is the in-memory DocumentStore used in tests. It can simulate write
// failures to exercise the "changes not saved" path.
type Store struct {
	mu        sync.RWMutex
	docs      map[domain.Kind][]byte
	failSaves bool
}

var _ ports.DocumentStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{docs: map[domain.Kind][]byte{}}
}

func (s *Store) Load(_ context.Context, kind domain.Kind) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[kind]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, true, nil
}

func (s *Store) Save(_ context.Context, kind domain.Kind, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSaves {
		return ErrSaveFailed
	}
	stored := make([]byte, len(doc))
	copy(stored, doc)
	s.docs[kind] = stored
	return nil
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSaves {
		return ErrSaveFailed
	}
	s.docs = map[domain.Kind][]byte{}
	return nil
}

// FailSaves toggles write-failure injection.
func (s *Store) FailSaves(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSaves = fail
}
