package issuance

import (
	"encoding/json"
	"fmt"

	"github.com/stablemesh/issuer/internal/ledger"
)

// StateMap is a typed mapping persisted in the state store. A value is
// stored with a 1-byte existence prefix so an explicit false/zero can be
// told apart from an absent entry at the storage level; readers get the
// default-on-absent-key semantics the handlers rely on.
type StateMap[K any, V any] struct {
	store       *ledger.StateStore
	mapName     string
	keyToString func(key K) string
}

func NewStateMap[K any, V any](store *ledger.StateStore, mapName string, keyToString func(key K) string) *StateMap[K, V] {
	return &StateMap[K, V]{
		store:       store,
		mapName:     mapName,
		keyToString: keyToString,
	}
}

func (m *StateMap[K, V]) stateKey(key K) []byte {
	return []byte(fmt.Sprintf("%s_%s", m.mapName, m.keyToString(key)))
}

func (m *StateMap[K, V]) Get(k K) (exist bool, v V, err error) {
	exist, data, err := m.store.GetState(m.stateKey(k))
	if err != nil {
		return false, v, err
	}
	if !exist || len(data) == 0 || data[0] == 0 {
		return false, v, nil
	}
	if err := json.Unmarshal(data[1:], &v); err != nil {
		return false, v, err
	}
	return true, v, nil
}

func (m *StateMap[K, V]) Has(k K) (bool, error) {
	exist, data, err := m.store.GetState(m.stateKey(k))
	if err != nil {
		return false, err
	}
	return exist && len(data) != 0 && data[0] != 0, nil
}

func (m *StateMap[K, V]) Put(k K, v V) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.store.SetState(m.stateKey(k), append([]byte{1}, data...))
	return nil
}

func (m *StateMap[K, V]) Delete(k K) {
	m.store.SetState(m.stateKey(k), []byte{0})
}

// StateSlot is a typed singleton persisted in the state store.
type StateSlot[V any] struct {
	store    *ledger.StateStore
	slotName string
}

func NewStateSlot[V any](store *ledger.StateStore, slotName string) *StateSlot[V] {
	return &StateSlot[V]{
		store:    store,
		slotName: slotName,
	}
}

func (s *StateSlot[V]) stateKey() []byte {
	return []byte(s.slotName)
}

func (s *StateSlot[V]) Get() (exist bool, v V, err error) {
	exist, data, err := s.store.GetState(s.stateKey())
	if err != nil {
		return false, v, err
	}
	if !exist || len(data) == 0 || data[0] == 0 {
		return false, v, nil
	}
	if err := json.Unmarshal(data[1:], &v); err != nil {
		return false, v, err
	}
	return true, v, nil
}

func (s *StateSlot[V]) Has() (bool, error) {
	exist, data, err := s.store.GetState(s.stateKey())
	if err != nil {
		return false, err
	}
	return exist && len(data) != 0 && data[0] != 0, nil
}

func (s *StateSlot[V]) Put(v V) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.store.SetState(s.stateKey(), append([]byte{1}, data...))
	return nil
}
