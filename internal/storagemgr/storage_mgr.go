package storagemgr

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/stablemesh/issuer/pkg/repo"
)

var globalStorageMgr = &storageMgr{
	storageBuilderMap: make(map[string]func(p string) (Storage, error)),
	storages:          make(map[string]Storage),
	lock:              new(sync.Mutex),
}

func init() {
	memoryBuilder := func(p string) (Storage, error) {
		return NewMemory(), nil
	}

	// only for test, Initialize replaces these with real backends
	globalStorageMgr.storageBuilderMap[repo.KVStorageTypeLeveldb] = memoryBuilder
	globalStorageMgr.storageBuilderMap[repo.KVStorageTypeMemory] = memoryBuilder
	globalStorageMgr.storageBuilderMap[""] = memoryBuilder
}

type storageMgr struct {
	storageBuilderMap map[string]func(p string) (Storage, error)
	storages          map[string]Storage
	defaultKVType     string
	lock              *sync.Mutex
}

// Initialize installs the real storage builders. cacheMegabytes > 0 wraps
// the leveldb backend with the fastcache read-through layer.
func Initialize(defaultKVType string, cacheMegabytes int) error {
	globalStorageMgr.storageBuilderMap[repo.KVStorageTypeLeveldb] = func(p string) (Storage, error) {
		s, err := NewLeveldb(p)
		if err != nil {
			return nil, err
		}
		if cacheMegabytes > 0 {
			s = NewCachedStorage(s, cacheMegabytes)
		}
		return s, nil
	}
	globalStorageMgr.storageBuilderMap[repo.KVStorageTypeMemory] = func(p string) (Storage, error) {
		return NewMemory(), nil
	}
	_, ok := globalStorageMgr.storageBuilderMap[defaultKVType]
	if !ok {
		return errors.Errorf("unknown kv type %s, expect leveldb or memory", defaultKVType)
	}
	globalStorageMgr.defaultKVType = defaultKVType
	return nil
}

func Open(p string) (Storage, error) {
	return OpenSpecifyType(globalStorageMgr.defaultKVType, p)
}

func OpenSpecifyType(typ string, p string) (Storage, error) {
	globalStorageMgr.lock.Lock()
	defer globalStorageMgr.lock.Unlock()
	s, ok := globalStorageMgr.storages[p]
	if !ok {
		builder, ok := globalStorageMgr.storageBuilderMap[typ]
		if !ok {
			return nil, errors.Errorf("unknown kv type %s, expect leveldb or memory", typ)
		}
		var err error
		s, err = builder(p)
		if err != nil {
			return nil, err
		}
		globalStorageMgr.storages[p] = s
	}
	return s, nil
}
