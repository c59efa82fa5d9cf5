package main

import (
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/stablemesh/issuer/internal/issuance"
	"github.com/stablemesh/issuer/internal/ledger"
	"github.com/stablemesh/issuer/internal/storagemgr"
	"github.com/stablemesh/issuer/pkg/loggers"
	"github.com/stablemesh/issuer/pkg/repo"
)

var initCMD = &cli.Command{
	Name:  "init",
	Usage: "Initialize a repo and apply the genesis grants",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "owner",
			Usage: "owner address (defaults to the generated genesis owner)",
		},
		&cli.StringFlag{
			Name:  "subdenom",
			Usage: "subdenom of the managed asset",
		},
	},
	Action: func(ctx *cli.Context) error {
		rep, err := repo.Load(ctx.String("repo"))
		if err != nil {
			return err
		}
		if owner := ctx.String("owner"); owner != "" {
			rep.GenesisConfig.Owner = owner
		}
		if subdenom := ctx.String("subdenom"); subdenom != "" {
			rep.GenesisConfig.Subdenom = subdenom
		}
		if err := rep.Flush(); err != nil {
			return err
		}

		issuer, err := buildIssuer(rep)
		if err != nil {
			return err
		}
		if err := issuer.GenesisInit(rep.GenesisConfig); err != nil {
			return err
		}
		color.Green("initialized repo at %s, denom %s, owner %s", rep.RepoRoot, rep.GenesisConfig.Subdenom, rep.GenesisConfig.Owner)
		return nil
	},
}

var statusCMD = &cli.Command{
	Name:  "status",
	Usage: "Show the issuer config and freeze state",
	Action: func(ctx *cli.Context) error {
		issuer, err := openIssuer(ctx)
		if err != nil {
			return err
		}
		cfg, err := issuer.Config()
		if err != nil {
			return err
		}
		fmt.Printf("denom: %s\n", cfg.Denom)
		fmt.Printf("owner: %s\n", cfg.Owner)
		if cfg.IsFrozen {
			color.Red("frozen: true")
		} else {
			color.Green("frozen: false")
		}
		return nil
	},
}

var execCMD = &cli.Command{
	Name:  "exec",
	Usage: "Execute a command against the local store",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "caller address",
			Required: true,
		},
	},
	Subcommands: []*cli.Command{
		{
			Name:  "mint",
			Usage: "Mint coins to a recipient, consuming the caller's minter allowance",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "to", Required: true},
				&cli.StringFlag{Name: "amount", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				amount, err := parseAmount(ctx.String("amount"))
				if err != nil {
					return err
				}
				return runCommand(ctx, &issuance.Mint{To: ctx.String("to"), Amount: amount})
			},
		},
		{
			Name:  "burn",
			Usage: "Burn coins from custody, consuming the caller's burner allowance",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "amount", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				amount, err := parseAmount(ctx.String("amount"))
				if err != nil {
					return err
				}
				return runCommand(ctx, &issuance.Burn{Amount: amount})
			},
		},
		{
			Name:  "freeze",
			Usage: "Set the global freeze flag (requires freezer permission)",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "status", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				return runCommand(ctx, &issuance.Freeze{Status: ctx.Bool("status")})
			},
		},
		{
			Name:  "blacklist",
			Usage: "Set an address's restricted status (requires blacklister permission)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "address", Required: true},
				&cli.BoolFlag{Name: "status", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				return runCommand(ctx, &issuance.SetBlacklistStatus{
					Address: ctx.String("address"),
					Status:  ctx.Bool("status"),
				})
			},
		},
		{
			Name:  "set-minter",
			Usage: "Overwrite a principal's minter allowance (owner only)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "address", Required: true},
				&cli.StringFlag{Name: "allowance", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				amount, err := parseAmount(ctx.String("allowance"))
				if err != nil {
					return err
				}
				return runCommand(ctx, &issuance.SetMinterAllowance{Address: ctx.String("address"), Amount: amount})
			},
		},
		{
			Name:  "set-burner",
			Usage: "Overwrite a principal's burner allowance (owner only)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "address", Required: true},
				&cli.StringFlag{Name: "allowance", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				amount, err := parseAmount(ctx.String("allowance"))
				if err != nil {
					return err
				}
				return runCommand(ctx, &issuance.SetBurnerAllowance{Address: ctx.String("address"), Amount: amount})
			},
		},
		{
			Name:  "set-freezer",
			Usage: "Set a principal's freezer permission (owner only)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "address", Required: true},
				&cli.BoolFlag{Name: "status", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				return runCommand(ctx, &issuance.SetFreezerPermission{Address: ctx.String("address"), Status: ctx.Bool("status")})
			},
		},
		{
			Name:  "set-blacklister",
			Usage: "Set a principal's blacklister permission (owner only)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "address", Required: true},
				&cli.BoolFlag{Name: "status", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				return runCommand(ctx, &issuance.SetBlacklisterPermission{Address: ctx.String("address"), Status: ctx.Bool("status")})
			},
		},
		{
			Name:  "change-owner",
			Usage: "Transfer ownership of the issuer (owner only)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "new-owner", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				return runCommand(ctx, &issuance.ChangeOwner{NewOwner: ctx.String("new-owner")})
			},
		},
		{
			Name:  "change-admin",
			Usage: "Reassign denom admin at the token backend (owner only)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "new-admin", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				return runCommand(ctx, &issuance.ChangeAdmin{NewAdmin: ctx.String("new-admin")})
			},
		},
	},
}

var checkTransferCMD = &cli.Command{
	Name:      "check-transfer",
	Usage:     "Run the pre-transfer guard for a (from, to, amount) triple",
	ArgsUsage: "<from> <to> <amount>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 3 {
			return errors.New("expected: check-transfer <from> <to> <amount>")
		}
		from, to := ctx.Args().Get(0), ctx.Args().Get(1)
		if !ethcommon.IsHexAddress(from) {
			return errors.Errorf("invalid from address %q", from)
		}
		if !ethcommon.IsHexAddress(to) {
			return errors.Errorf("invalid to address %q", to)
		}
		amount, err := parseAmount(ctx.Args().Get(2))
		if err != nil {
			return err
		}
		issuer, err := openIssuer(ctx)
		if err != nil {
			return err
		}
		denom, err := issuer.Denom()
		if err != nil {
			return err
		}
		err = issuer.BeforeTransfer(
			ethcommon.HexToAddress(from),
			ethcommon.HexToAddress(to),
			[]issuance.Coin{{Denom: denom, Amount: amount}},
		)
		if err != nil {
			color.Red("reject: %s", err)
			return nil
		}
		color.Green("allow")
		return nil
	},
}

func runCommand(ctx *cli.Context, cmd issuance.Command) error {
	from := ctx.String("from")
	if !ethcommon.IsHexAddress(from) {
		return errors.Errorf("invalid --from address %q", from)
	}
	issuer, err := openIssuer(ctx)
	if err != nil {
		return err
	}
	resp, err := issuer.Execute(ethcommon.HexToAddress(from), cmd)
	if err != nil {
		return err
	}
	for _, attr := range resp.Attributes {
		fmt.Printf("%s: %s\n", attr.Key, attr.Value)
	}
	for _, instr := range resp.Instructions {
		fmt.Printf("instruction: %s\n", describeInstruction(instr))
	}
	return nil
}

func openIssuer(ctx *cli.Context) (*issuance.Issuer, error) {
	rep, err := repo.Load(ctx.String("repo"))
	if err != nil {
		return nil, err
	}
	return buildIssuer(rep)
}

func buildIssuer(rep *repo.Repo) (*issuance.Issuer, error) {
	loggers.Initialize(rep.Config.Log.Level)
	if err := storagemgr.Initialize(rep.Config.Storage.KVType, rep.Config.Storage.KVCacheSize); err != nil {
		return nil, err
	}
	backend, err := storagemgr.Open(rep.StorageDir())
	if err != nil {
		return nil, err
	}
	if !ethcommon.IsHexAddress(rep.GenesisConfig.Custody) {
		return nil, errors.Errorf("invalid custody address %q", rep.GenesisConfig.Custody)
	}
	state := ledger.New(backend)
	return issuance.New(state, ethcommon.HexToAddress(rep.GenesisConfig.Custody), loggers.Logger(loggers.Issuance)), nil
}

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func describeInstruction(instr issuance.Instruction) string {
	switch in := instr.(type) {
	case *issuance.CreateDenom:
		return fmt.Sprintf("create-denom subdenom=%s", in.Subdenom)
	case *issuance.MintCoins:
		return fmt.Sprintf("mint %s%s to custody %s", in.Coin.Amount, in.Coin.Denom, in.Recipient)
	case *issuance.SendCoins:
		return fmt.Sprintf("send %s%s from %s to %s", in.Coin.Amount, in.Coin.Denom, in.From, in.To)
	case *issuance.BurnCoins:
		return fmt.Sprintf("burn %s%s from custody", in.Coin.Amount, in.Coin.Denom)
	case *issuance.ChangeDenomAdmin:
		return fmt.Sprintf("change-admin of %s to %s", in.Denom, in.NewAdmin)
	default:
		return fmt.Sprintf("%T", instr)
	}
}
