package issuance

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/stablemesh/issuer/internal/ledger"
)

const configStorageKey = "config"

// Config is the singleton issuer configuration. Owner and the freeze flag
// are mutable through privileged commands; the denom is written once at
// initialization and never changed.
type Config struct {
	Owner    ethcommon.Address `json:"owner"`
	IsFrozen bool              `json:"is_frozen"`
	Denom    string            `json:"denom"`
}

type configStore struct {
	slot *StateSlot[Config]
}

func newConfigStore(store *ledger.StateStore) *configStore {
	return &configStore{
		slot: NewStateSlot[Config](store, configStorageKey),
	}
}

func (c *configStore) initialized() (bool, error) {
	return c.slot.Has()
}

func (c *configStore) init(owner ethcommon.Address, denom string) error {
	exist, err := c.slot.Has()
	if err != nil {
		return err
	}
	if exist {
		return ErrAlreadyInitialized
	}
	return c.slot.Put(Config{
		Owner:    owner,
		IsFrozen: false,
		Denom:    denom,
	})
}

func (c *configStore) get() (Config, error) {
	exist, cfg, err := c.slot.Get()
	if err != nil {
		return Config{}, err
	}
	if !exist {
		return Config{}, ErrNotInitialized
	}
	return cfg, nil
}

func (c *configStore) update(mutate func(cfg *Config)) error {
	cfg, err := c.get()
	if err != nil {
		return err
	}
	mutate(&cfg)
	return c.slot.Put(cfg)
}
