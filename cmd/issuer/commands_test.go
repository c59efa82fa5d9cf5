package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp() *cli.App {
	app := cli.NewApp()
	app.Name = "issuer"
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "repo"},
	}
	app.Commands = []*cli.Command{checkTransferCMD}
	return app
}

func TestCheckTransferValidatesAddresses(t *testing.T) {
	userB := "0x79a1215469FaB6f9c63c1816b45183AD3624bE34"

	t.Run("malformed from rejected", func(t *testing.T) {
		err := newTestApp().Run([]string{"issuer", "--repo", t.TempDir(),
			"check-transfer", "not-an-address", userB, "1"})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "invalid from address")
	})

	t.Run("malformed to rejected", func(t *testing.T) {
		err := newTestApp().Run([]string{"issuer", "--repo", t.TempDir(),
			"check-transfer", userB, "not-an-address", "1"})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "invalid to address")
	})

	t.Run("malformed amount rejected", func(t *testing.T) {
		err := newTestApp().Run([]string{"issuer", "--repo", t.TempDir(),
			"check-transfer", userB, userB, "12x"})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "invalid amount")
	})

	t.Run("wrong arity rejected", func(t *testing.T) {
		err := newTestApp().Run([]string{"issuer", "--repo", t.TempDir(),
			"check-transfer", userB, userB})
		require.NotNil(t, err)
	})
}
