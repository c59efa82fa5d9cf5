package repo

const (
	KVStorageTypeLeveldb = "leveldb"
	KVStorageTypeMemory  = "memory"
)

type Config struct {
	Storage Storage `mapstructure:"storage" toml:"storage"`
	Log     Log     `mapstructure:"log" toml:"log"`
}

type Storage struct {
	KVType      string `mapstructure:"kv_type" toml:"kv_type"`
	KVCacheSize int    `mapstructure:"kv_cache_size" toml:"kv_cache_size"`
}

type Log struct {
	Level string `mapstructure:"level" toml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: Storage{
			KVType:      KVStorageTypeLeveldb,
			KVCacheSize: 16,
		},
		Log: Log{
			Level: "info",
		},
	}
}
