package storagemgr

import (
	"github.com/VictoriaMetrics/fastcache"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	kvCacheHitCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stablemesh_issuer",
		Subsystem: "storage",
		Name:      "kv_cache_hit_counter",
		Help:      "The total number of kv cache hits",
	})

	kvCacheMissCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stablemesh_issuer",
		Subsystem: "storage",
		Name:      "kv_cache_miss_counter",
		Help:      "The total number of kv cache misses",
	})
)

func init() {
	prometheus.MustRegister(kvCacheHitCounter)
	prometheus.MustRegister(kvCacheMissCounter)
}

type CachedStorage struct {
	Storage
	cache *fastcache.Cache
}

// NewCachedStorage wraps s with a read-through fastcache layer.
// The issuer state is read-heavy (the pre-transfer guard hits config and
// blacklist keys on every transfer), so cache the hot keys.
func NewCachedStorage(s Storage, megabytesLimit int) Storage {
	if megabytesLimit <= 0 {
		megabytesLimit = 16
	}
	return &CachedStorage{
		Storage: s,
		cache:   fastcache.New(megabytesLimit * 1024 * 1024),
	}
}

func (c *CachedStorage) Get(key []byte) ([]byte, error) {
	value, ok := c.cache.HasGet(nil, key)
	if ok {
		kvCacheHitCounter.Inc()
		return value, nil
	}
	kvCacheMissCounter.Inc()
	v, err := c.Storage.Get(key)
	if err != nil {
		return nil, err
	}
	if v != nil {
		c.cache.Set(key, v)
	}
	return v, nil
}

func (c *CachedStorage) Has(key []byte) (bool, error) {
	if c.cache.Has(key) {
		kvCacheHitCounter.Inc()
		return true, nil
	}
	kvCacheMissCounter.Inc()
	return c.Storage.Has(key)
}

func (c *CachedStorage) Put(key, value []byte) error {
	if err := c.Storage.Put(key, value); err != nil {
		return err
	}
	c.cache.Set(key, value)
	return nil
}

func (c *CachedStorage) Delete(key []byte) error {
	if err := c.Storage.Delete(key); err != nil {
		return err
	}
	c.cache.Del(key)
	return nil
}

func (c *CachedStorage) NewBatch() Batch {
	return &cachedBatch{batch: c.Storage.NewBatch(), cache: c.cache}
}

type cachedBatchOp struct {
	key    []byte
	value  []byte
	delete bool
}

type cachedBatch struct {
	batch Batch
	cache *fastcache.Cache
	ops   []cachedBatchOp
}

func (b *cachedBatch) Put(key, value []byte) {
	b.batch.Put(key, value)
	b.ops = append(b.ops, cachedBatchOp{key: key, value: value})
}

func (b *cachedBatch) Delete(key []byte) {
	b.batch.Delete(key)
	b.ops = append(b.ops, cachedBatchOp{key: key, delete: true})
}

func (b *cachedBatch) Commit() error {
	if err := b.batch.Commit(); err != nil {
		return err
	}
	// refresh the cache only after the underlying write landed
	for _, op := range b.ops {
		if op.delete {
			b.cache.Del(op.key)
		} else {
			b.cache.Set(op.key, op.value)
		}
	}
	b.ops = nil
	return nil
}

func (b *cachedBatch) Reset() {
	b.batch.Reset()
	b.ops = nil
}
