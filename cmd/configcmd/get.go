// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/ux"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value, showing the effective value after merging
flags, environment and the config file.

Keys:
  rpc-url                - Solana JSON-RPC endpoint
  cluster                - mainnet-beta, devnet, testnet or localnet
  program-id             - quadratic plugin program id
  governance-program-id  - governance program owning realms
  realms-file            - YAML file of named realms
  keypair                - keypair file whose public key pays for create

Examples:
  quadratic config get cluster
  quadratic config get program-id`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(_ *cobra.Command, args []string) error {
	key := args[0]
	if err := checkKey(key); err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s = %s", key, effectiveValue(key))
	return nil
}

func checkKey(key string) error {
	if !slices.Contains(constants.ConfigKeys, key) {
		return fmt.Errorf("%w: %q (known keys: %v)", constants.ErrUnknownConfigKey, key, constants.ConfigKeys)
	}
	return nil
}

// effectiveValue reports the value in use, filling in the built-in
// defaults of the program ids.
func effectiveValue(key string) string {
	switch key {
	case constants.ConfigProgramID:
		if id, err := app.ProgramID(); err == nil {
			return id.String()
		}
	case constants.ConfigGovernanceProgramID:
		if id, err := app.GovernanceProgramID(); err == nil {
			return id.String()
		}
	}
	return app.Conf.GetConfigStringValue(key)
}
