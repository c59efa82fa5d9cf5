package ledger

import (
	"github.com/pkg/errors"

	"github.com/stablemesh/issuer/internal/storagemgr"
)

// StateStore is the issuer's state: a journaled write overlay on a KV
// backend. A command executes between Snapshot and either
// RevertToSnapshot (on failure) or Commit (on success); Commit lands every
// overlay write in a single batch, so no partial command effect ever
// reaches the backend.
type StateStore struct {
	backend storagemgr.Storage
	dirty   map[string][]byte
	journal []journalEntry
}

type journalEntry struct {
	key         string
	prev        []byte
	prevInDirty bool
}

func New(backend storagemgr.Storage) *StateStore {
	return &StateStore{
		backend: backend,
		dirty:   make(map[string][]byte),
	}
}

// GetState reads through the overlay. The bool reports key presence.
func (s *StateStore) GetState(key []byte) (bool, []byte, error) {
	if v, ok := s.dirty[string(key)]; ok {
		return true, v, nil
	}
	v, err := s.backend.Get(key)
	if err != nil {
		return false, nil, errors.Wrap(err, "state read")
	}
	if v == nil {
		return false, nil, nil
	}
	return true, v, nil
}

func (s *StateStore) SetState(key, value []byte) {
	k := string(key)
	prev, ok := s.dirty[k]
	s.journal = append(s.journal, journalEntry{key: k, prev: prev, prevInDirty: ok})
	s.dirty[k] = value
}

func (s *StateStore) Snapshot() int {
	return len(s.journal)
}

func (s *StateStore) RevertToSnapshot(snap int) {
	if snap < 0 || snap > len(s.journal) {
		panic("ledger: revert to invalid snapshot")
	}
	for i := len(s.journal) - 1; i >= snap; i-- {
		entry := s.journal[i]
		if entry.prevInDirty {
			s.dirty[entry.key] = entry.prev
		} else {
			delete(s.dirty, entry.key)
		}
	}
	s.journal = s.journal[:snap]
}

// Commit writes the overlay to the backend atomically and resets it.
func (s *StateStore) Commit() error {
	if len(s.dirty) == 0 {
		s.journal = s.journal[:0]
		return nil
	}
	batch := s.backend.NewBatch()
	for k, v := range s.dirty {
		batch.Put([]byte(k), v)
	}
	if err := batch.Commit(); err != nil {
		return errors.Wrap(err, "state commit")
	}
	s.dirty = make(map[string][]byte)
	s.journal = s.journal[:0]
	return nil
}
