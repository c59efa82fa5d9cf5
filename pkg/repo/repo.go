package repo

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	CfgFileName     = "config.toml"
	GenesisFileName = "genesis.toml"
	StorageDirName  = "storage"

	rootPathEnvVar  = "ISSUER_PATH"
	defaultRepoRoot = "~/.stablemesh-issuer"
)

type Repo struct {
	RepoRoot      string
	Config        *Config
	GenesisConfig *GenesisConfig
}

// Default builds a repo with default config and genesis, without touching
// the filesystem.
func Default(repoRoot string) *Repo {
	return &Repo{
		RepoRoot:      repoRoot,
		Config:        DefaultConfig(),
		GenesisConfig: DefaultGenesisConfig(),
	}
}

// Load reads config.toml and genesis.toml under repoRoot. Missing files
// keep their defaults, so a bare directory behaves like Default.
func Load(repoRoot string) (*Repo, error) {
	repoRoot, err := LoadRepoRootFromEnv(repoRoot)
	if err != nil {
		return nil, err
	}
	rep := Default(repoRoot)

	cfgPath := filepath.Join(repoRoot, CfgFileName)
	if fileExist(cfgPath) {
		if err := readConfigFromFile(cfgPath, rep.Config); err != nil {
			return nil, err
		}
	}
	genesisPath := filepath.Join(repoRoot, GenesisFileName)
	if fileExist(genesisPath) {
		if err := readConfigFromFile(genesisPath, rep.GenesisConfig); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// Flush writes the current config and genesis back to the repo directory.
func (rep *Repo) Flush() error {
	if err := os.MkdirAll(rep.RepoRoot, 0755); err != nil {
		return errors.Wrapf(err, "create repo dir %s", rep.RepoRoot)
	}
	if err := writeConfigFile(filepath.Join(rep.RepoRoot, CfgFileName), rep.Config); err != nil {
		return err
	}
	return writeConfigFile(filepath.Join(rep.RepoRoot, GenesisFileName), rep.GenesisConfig)
}

func (rep *Repo) StorageDir() string {
	return filepath.Join(rep.RepoRoot, StorageDirName)
}

func LoadRepoRootFromEnv(repoRoot string) (string, error) {
	if repoRoot != "" {
		return repoRoot, nil
	}
	repoRoot = os.Getenv(rootPathEnvVar)
	var err error
	if len(repoRoot) == 0 {
		repoRoot, err = homedir.Expand(defaultRepoRoot)
	}
	return repoRoot, err
}

func readConfigFromFile(cfgFilePath string, config any) error {
	vp := viper.New()
	vp.SetConfigFile(cfgFilePath)
	vp.SetConfigType("toml")

	// only check types, viper does not have a strong type checking
	raw, err := os.ReadFile(cfgFilePath)
	if err != nil {
		return err
	}
	decoder := toml.NewDecoder(bytes.NewBuffer(raw))
	checker := reflect.New(reflect.TypeOf(config).Elem())
	if err := decoder.Decode(checker.Interface()); err != nil {
		var decodeError *toml.DecodeError
		if errors.As(err, &decodeError) {
			return errors.Errorf("check config format failed from %s:\n%s", cfgFilePath, decodeError.String())
		}
		return errors.Wrapf(err, "check config format failed from %s", cfgFilePath)
	}

	return readConfig(vp, config)
}

func readConfig(vp *viper.Viper, config any) error {
	vp.AutomaticEnv()
	if _, ok := config.(*GenesisConfig); ok {
		vp.SetEnvPrefix("ISSUER_GENESIS")
	} else {
		vp.SetEnvPrefix("ISSUER")
	}
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := vp.ReadInConfig(); err != nil {
		return err
	}

	return vp.Unmarshal(config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		func(f reflect.Kind, t reflect.Kind, data any) (any, error) {
			if f != reflect.String || t != reflect.Slice {
				return data, nil
			}
			raw := data.(string)
			if raw == "" {
				return []string{}, nil
			}
			raw = strings.TrimPrefix(raw, ";")
			raw = strings.TrimSuffix(raw, ";")
			return strings.Split(raw, ";"), nil
		},
	)))
}

func writeConfigFile(path string, config any) error {
	raw, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrapf(err, "marshal config for %s", path)
	}
	return os.WriteFile(path, raw, 0644)
}

func fileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
