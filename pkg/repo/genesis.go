package repo

// DefaultCustodyAddr is the issuer's own account at the token backend.
// Newly minted coins land here before being forwarded to the recipient,
// and burns draw from here.
const DefaultCustodyAddr = "0x0000000000000000000000000000000000001002"

// DefaultOwnerAddr is only used by generated development repos and tests.
const DefaultOwnerAddr = "0xEd17543171C1459714cdC6519b58fFcC29A3C3c9"

type GenesisConfig struct {
	// Owner is the principal allowed to manage allowances, permissions
	// and the config itself.
	Owner string `mapstructure:"owner" toml:"owner"`

	// Subdenom names the managed asset at the token backend.
	Subdenom string `mapstructure:"subdenom" toml:"subdenom"`

	// Custody is the issuer's own account at the token backend.
	Custody string `mapstructure:"custody" toml:"custody"`

	// Initial grants, applied at genesis with Owner as the caller.
	Minters      []*AllowanceGrant `mapstructure:"minters" toml:"minters"`
	Burners      []*AllowanceGrant `mapstructure:"burners" toml:"burners"`
	Freezers     []string          `mapstructure:"freezers" toml:"freezers"`
	Blacklisters []string          `mapstructure:"blacklisters" toml:"blacklisters"`
}

type AllowanceGrant struct {
	Address   string `mapstructure:"address" toml:"address"`
	Allowance string `mapstructure:"allowance" toml:"allowance"`
}

func DefaultGenesisConfig() *GenesisConfig {
	return &GenesisConfig{
		Owner:    DefaultOwnerAddr,
		Subdenom: "uusdc",
		Custody:  DefaultCustodyAddr,
	}
}
