// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registrarcmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/cmd/flags"
	"github.com/Deadghoost/governance-ui/pkg/ux"
)

type addressFlags struct {
	realm  flags.RealmFlags
	output string
}

func newAddressCmd() *cobra.Command {
	f := &addressFlags{}
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive the registrar address of a realm",
		Long: `Derive the registrar address for a realm and governing token mint.

The address is computed locally from the plugin program id; no RPC call is
made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return registrarAddress(cmd, f)
		},
	}
	flags.AddRealmFlagsToCmd(cmd, &f.realm, false)
	flags.AddOutputFlagToCmd(cmd, &f.output)
	return cmd
}

func registrarAddress(cmd *cobra.Command, f *addressFlags) error {
	r, err := flags.ResolveRealm(cmd.Context(), app, f.realm, false)
	if err != nil {
		return err
	}
	if err := r.ValidateForLookup(); err != nil {
		return err
	}
	client, err := app.QuadraticClient(false)
	if err != nil {
		return err
	}
	pda, err := client.RegistrarPDA(r.Address, r.CommunityMint)
	if err != nil {
		return err
	}
	view := ux.AddressView{
		Realm:              r.Address.String(),
		GoverningTokenMint: r.CommunityMint.String(),
		ProgramID:          client.ProgramID().String(),
		Registrar:          pda.Address.String(),
		Bump:               pda.Bump,
	}
	return ux.Render(ux.Logger.Writer(), f.output, view, func(w io.Writer) error {
		return ux.AddressTable(w, view)
	})
}
