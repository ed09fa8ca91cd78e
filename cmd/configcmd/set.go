// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"net/url"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/ux"
	"github.com/Deadghoost/governance-ui/sdk/keychain"
	"github.com/Deadghoost/governance-ui/sdk/network"
	"github.com/Deadghoost/governance-ui/sdk/realm"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.quadratic/cli.json (or the file given
with --config).

Values are checked before they are saved: program ids must be base58
public keys, the cluster must be a known name, rpc-url must be an http(s)
URL and realms-file must parse.

Examples:
  quadratic config set cluster devnet
  quadratic config set rpc-url http://127.0.0.1:8899
  quadratic config set realms-file ~/realms.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if err := checkKey(key); err != nil {
		return err
	}
	if err := validateValue(key, value); err != nil {
		return err
	}
	path := app.GetConfigPath()
	if err := app.Conf.SetConfigValue(key, value, path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	app.Log.Debug("config updated", "key", key, "path", path)

	ux.Logger.GreenCheckmarkToUser("Set %s = %s in %s", key, value, path)
	return nil
}

func validateValue(key, value string) error {
	switch key {
	case constants.ConfigRPCURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid %s %q: expected an http(s) URL", key, value)
		}
	case constants.ConfigCluster:
		if _, err := network.NetworkFromName(value); err != nil {
			return err
		}
	case constants.ConfigProgramID, constants.ConfigGovernanceProgramID:
		if _, err := solana.PublicKeyFromBase58(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	case constants.ConfigRealmsFile:
		if _, err := realm.LoadFile(value); err != nil {
			return err
		}
	case constants.ConfigKeypair:
		if _, err := keychain.NewKeychain(value); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}
	return nil
}
