package storagemgr

import "sync"

// Storage is the KV abstraction every state-bearing component sits on.
// Get returns (nil, nil) for an absent key; errors are storage failures
// and abort the running command.
type Storage interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	NewBatch() Batch
	Close() error
}

// Batch buffers writes and applies them atomically on Commit.
type Batch interface {
	Put(key, value []byte)
	Delete(key []byte)
	Commit() error
	Reset()
}

type memoryStorage struct {
	lock sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an in-process Storage, used by tests and by the
// memory KV type.
func NewMemory() Storage {
	return &memoryStorage{
		data: make(map[string][]byte),
	}
}

func (s *memoryStorage) Get(key []byte) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	v, ok := s.data[string(key)]
	if !ok {
		return nil, nil
	}
	ret := make([]byte, len(v))
	copy(ret, v)
	return ret, nil
}

func (s *memoryStorage) Has(key []byte) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	_, ok := s.data[string(key)]
	return ok, nil
}

func (s *memoryStorage) Put(key, value []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[string(key)] = v
	return nil
}

func (s *memoryStorage) Delete(key []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.data, string(key))
	return nil
}

func (s *memoryStorage) NewBatch() Batch {
	return &memoryBatch{storage: s}
}

func (s *memoryStorage) Close() error {
	return nil
}

type memoryBatchOp struct {
	key    []byte
	value  []byte
	delete bool
}

type memoryBatch struct {
	storage *memoryStorage
	ops     []memoryBatchOp
}

func (b *memoryBatch) Put(key, value []byte) {
	k := make([]byte, len(key))
	copy(k, key)
	v := make([]byte, len(value))
	copy(v, value)
	b.ops = append(b.ops, memoryBatchOp{key: k, value: v})
}

func (b *memoryBatch) Delete(key []byte) {
	k := make([]byte, len(key))
	copy(k, key)
	b.ops = append(b.ops, memoryBatchOp{key: k, delete: true})
}

func (b *memoryBatch) Commit() error {
	b.storage.lock.Lock()
	defer b.storage.lock.Unlock()
	for _, op := range b.ops {
		if op.delete {
			delete(b.storage.data, string(op.key))
		} else {
			b.storage.data[string(op.key)] = op.value
		}
	}
	b.ops = nil
	return nil
}

func (b *memoryBatch) Reset() {
	b.ops = nil
}
