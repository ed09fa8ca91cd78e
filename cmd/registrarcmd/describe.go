// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registrarcmd

import (
	"context"
	"errors"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/cmd/flags"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/prompts"
	"github.com/Deadghoost/governance-ui/pkg/ux"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
	"github.com/Deadghoost/governance-ui/sdk/realm"
)

var errNoRealmsInFile = errors.New("the realms file lists no realms")

type describeFlags struct {
	realm  flags.RealmFlags
	all    bool
	output string
}

func newDescribeCmd() *cobra.Command {
	f := &describeFlags{}
	cmd := &cobra.Command{
		Use:   "describe [realmName...]",
		Short: "Fetch and decode registrars from the cluster",
		Long: `Fetch the registrar of one or more realms and print its state.

Realm names given as arguments (or --all) are loaded from --realms-file and
fetched concurrently. Each registrar is reported as found, not found,
decode error or transport error. JSON and YAML output is always a list,
even for a single realm.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return describeRegistrars(cmd, f, args)
		},
	}
	flags.AddRealmFlagsToCmd(cmd, &f.realm, false)
	cmd.Flags().BoolVar(&f.all, "all", false, "describe every realm in --realms-file")
	flags.AddOutputFlagToCmd(cmd, &f.output)
	return cmd
}

func describeRegistrars(cmd *cobra.Command, f *describeFlags, args []string) error {
	realms, err := describeTargets(cmd.Context(), f, args)
	if err != nil {
		return err
	}
	client, err := app.QuadraticClient(true)
	if err != nil {
		return err
	}

	pdas := make([]quadratic.RegistrarPDA, len(realms))
	addresses := make([]solana.PublicKey, len(realms))
	for i, r := range realms {
		if err := r.ValidateForLookup(); err != nil {
			return err
		}
		if pdas[i], err = client.RegistrarPDA(r.Address, r.CommunityMint); err != nil {
			return err
		}
		addresses[i] = pdas[i].Address
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
	defer cancel()
	results, err := client.FetchRegistrars(ctx, addresses)
	if err != nil {
		return err
	}

	views := make([]ux.RegistrarView, len(results))
	for i, result := range results {
		views[i] = ux.NewRegistrarView(realms[i].String(), pdas[i], result)
	}
	return ux.Render(ux.Logger.Writer(), f.output, views, func(w io.Writer) error {
		return ux.RegistrarTable(w, views)
	})
}

func describeTargets(ctx context.Context, f *describeFlags, args []string) ([]realm.Realm, error) {
	if len(args) == 0 && !f.all {
		name, err := pickRealmName(f)
		if err != nil {
			return nil, err
		}
		if name != "" {
			f.realm.Name = name
		}
		r, err := flags.ResolveRealm(ctx, app, f.realm, false)
		if err != nil {
			return nil, err
		}
		return []realm.Realm{r}, nil
	}
	provider, err := flags.LoadRealms(app)
	if err != nil {
		return nil, err
	}
	names := args
	if f.all {
		names = provider.Names()
	}
	if len(names) == 0 {
		return nil, errNoRealmsInFile
	}
	realms := make([]realm.Realm, len(names))
	for i, name := range names {
		if realms[i], err = provider.Realm(ctx, name); err != nil {
			return nil, err
		}
	}
	return realms, nil
}

// pickRealmName offers the realms of the configured file when no realm was
// named on the command line. It returns "" when there is nothing to pick.
func pickRealmName(f *describeFlags) (string, error) {
	if !f.realm.IsEmpty() || app.Conf.GetConfigStringValue(constants.ConfigRealmsFile) == "" {
		return "", nil
	}
	if _, ok := app.Prompt.(*prompts.NonInteractivePrompter); ok {
		return "", nil
	}
	provider, err := flags.LoadRealms(app)
	if err != nil {
		return "", err
	}
	names := provider.Names()
	if len(names) == 0 {
		return "", errNoRealmsInFile
	}
	return app.Prompt.CaptureList("Which realm?", names)
}
