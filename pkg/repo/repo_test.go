package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadBareDirUsesDefaults(t *testing.T) {
	rep, err := Load(t.TempDir())
	require.Nil(t, err)
	require.Equal(t, KVStorageTypeLeveldb, rep.Config.Storage.KVType)
	require.Equal(t, "uusdc", rep.GenesisConfig.Subdenom)
	require.Equal(t, DefaultCustodyAddr, rep.GenesisConfig.Custody)
}

func TestFlushLoadRoundtrip(t *testing.T) {
	root := t.TempDir()
	rep := Default(root)
	rep.Config.Log.Level = "debug"
	rep.GenesisConfig.Subdenom = "ueur"
	rep.GenesisConfig.Minters = []*AllowanceGrant{
		{Address: "0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013", Allowance: "250"},
	}
	require.Nil(t, rep.Flush())

	loaded, err := Load(root)
	require.Nil(t, err)
	require.Equal(t, "debug", loaded.Config.Log.Level)
	require.Equal(t, "ueur", loaded.GenesisConfig.Subdenom)
	require.Len(t, loaded.GenesisConfig.Minters, 1)
	require.Equal(t, "250", loaded.GenesisConfig.Minters[0].Allowance)
}

func TestLoadRejectsMistypedConfig(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, CfgFileName), []byte("[storage]\nkv_cache_size = \"lots\"\n"), 0644)
	require.Nil(t, err)

	_, err = Load(root)
	require.NotNil(t, err)
}

func TestStorageDir(t *testing.T) {
	rep := Default("/tmp/x")
	require.Equal(t, filepath.Join("/tmp/x", StorageDirName), rep.StorageDir())
}
