package storagemgr

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	leveldberrors "github.com/syndtr/goleveldb/leveldb/errors"
)

type ldbStorage struct {
	db *leveldb.DB
}

// NewLeveldb opens (or creates) a leveldb store at p.
func NewLeveldb(p string) (Storage, error) {
	db, err := leveldb.OpenFile(p, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb at %s", p)
	}
	return &ldbStorage{db: db}, nil
}

func (s *ldbStorage) Get(key []byte) ([]byte, error) {
	v, err := s.db.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldberrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (s *ldbStorage) Has(key []byte) (bool, error) {
	return s.db.Has(key, nil)
}

func (s *ldbStorage) Put(key, value []byte) error {
	return s.db.Put(key, value, nil)
}

func (s *ldbStorage) Delete(key []byte) error {
	return s.db.Delete(key, nil)
}

func (s *ldbStorage) NewBatch() Batch {
	return &ldbBatch{db: s.db, batch: new(leveldb.Batch)}
}

func (s *ldbStorage) Close() error {
	return s.db.Close()
}

type ldbBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *ldbBatch) Put(key, value []byte) {
	b.batch.Put(key, value)
}

func (b *ldbBatch) Delete(key []byte) {
	b.batch.Delete(key)
}

func (b *ldbBatch) Commit() error {
	if err := b.db.Write(b.batch, nil); err != nil {
		return err
	}
	b.batch.Reset()
	return nil
}

func (b *ldbBatch) Reset() {
	b.batch.Reset()
}
