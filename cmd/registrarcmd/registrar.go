// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registrarcmd

import (
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/pkg/application"
)

var app *application.App

// NewCmd creates the registrar command suite.
func NewCmd(injectedApp *application.App) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Derive, create, configure and inspect quadratic registrars",
		Long: `The registrar command works with the per-realm registrar account of the
quadratic voter-weight plugin.

COMMANDS:

  address      Derive the registrar address for a realm and mint
  create       Build the createRegistrar instruction
  configure    Build the configureRegistrar instruction
  describe     Fetch and decode registrars from the cluster

REALM INPUT:

  Pass --realm and --mint (plus --authority when building instructions),
  or load a descriptor with --realms-file and --name. Flags override the
  descriptor field by field.

NOTES:

  Instructions are never signed. The realm authority (and the payer for
  create) must sign the transaction that carries them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newAddressCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newConfigureCmd())
	cmd.AddCommand(newDescribeCmd())
	return cmd
}
