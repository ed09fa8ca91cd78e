// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/pkg/application"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/prompts"
	"github.com/Deadghoost/governance-ui/sdk/realm"
)

const (
	realmFlag             = "realm"
	mintFlag              = "mint"
	authorityFlag         = "authority"
	governanceProgramFlag = "governance-program"
	nameFlag              = "name"
)

// RealmFlags holds the raw realm inputs of a command. Fields set here take
// precedence over the descriptor loaded with --name.
type RealmFlags struct {
	Name              string
	Address           string
	Mint              string
	Authority         string
	GovernanceProgram string
}

// AddRealmFlagsToCmd registers --realm, --mint and --name. Commands that
// build instructions also get --authority and --governance-program.
func AddRealmFlagsToCmd(cmd *cobra.Command, rf *RealmFlags, withAuthority bool) {
	cmd.Flags().StringVar(&rf.Address, realmFlag, "", "realm account address")
	cmd.Flags().StringVar(&rf.Mint, mintFlag, "", "governing token (community) mint of the realm")
	cmd.Flags().StringVar(&rf.Name, nameFlag, "", "load the realm with this name from --realms-file")
	if withAuthority {
		cmd.Flags().StringVar(&rf.Authority, authorityFlag, "", "realm authority that signs the instruction")
		cmd.Flags().StringVar(&rf.GovernanceProgram, governanceProgramFlag, "",
			"governance program owning the realm (overrides --governance-program-id)")
	}
}

// IsEmpty reports whether no realm input was given at all.
func (rf RealmFlags) IsEmpty() bool {
	return rf.Name == "" && rf.Address == "" && rf.Mint == ""
}

// LoadRealms opens the realms file configured with --realms-file.
func LoadRealms(app *application.App) (realm.Provider, error) {
	path := app.Conf.GetConfigStringValue(constants.ConfigRealmsFile)
	if path == "" {
		var err error
		path, err = app.Prompt.CaptureExistingFilepath("Path to the realms file")
		if err != nil {
			return nil, err
		}
	}
	provider, err := realm.LoadFile(path)
	if err != nil {
		return nil, err
	}
	app.Log.Debug("loaded realms file", "path", path, "realms", len(provider.Names()))
	return provider, nil
}

// ResolveRealm turns rf into a realm descriptor. Missing addresses are
// prompted for; in non-interactive mode the prompt fails instead. With
// needAuthority the realm authority and governance program are resolved
// too.
func ResolveRealm(ctx context.Context, app *application.App, rf RealmFlags, needAuthority bool) (realm.Realm, error) {
	var provider realm.Provider
	if rf.Name != "" {
		var err error
		if provider, err = LoadRealms(app); err != nil {
			return realm.Realm{}, err
		}
	}
	return ResolveRealmFrom(ctx, app, provider, rf, needAuthority)
}

// ResolveRealmFrom is ResolveRealm with --name looked up in provider
// instead of the realms file.
func ResolveRealmFrom(
	ctx context.Context,
	app *application.App,
	provider realm.Provider,
	rf RealmFlags,
	needAuthority bool,
) (realm.Realm, error) {
	var r realm.Realm
	if rf.Name != "" {
		if provider == nil {
			return realm.Realm{}, fmt.Errorf("%w: %q", realm.ErrRealmNotFound, rf.Name)
		}
		var err error
		if r, err = provider.Realm(ctx, rf.Name); err != nil {
			return realm.Realm{}, err
		}
	} else if _, ok := app.Prompt.(*prompts.NonInteractivePrompter); ok && rf.IsEmpty() {
		return realm.Realm{}, constants.ErrNoRealm
	}

	fields := []struct {
		flag   string
		value  string
		prompt string
		dst    *solana.PublicKey
		needed bool
	}{
		{realmFlag, rf.Address, "Realm address", &r.Address, true},
		{mintFlag, rf.Mint, "Governing token mint", &r.CommunityMint, true},
		{authorityFlag, rf.Authority, "Realm authority", &r.Authority, needAuthority},
		{governanceProgramFlag, rf.GovernanceProgram, "", &r.Owner, false},
	}
	for _, f := range fields {
		if f.value != "" {
			key, err := ParsePublicKey(f.flag, f.value)
			if err != nil {
				return realm.Realm{}, err
			}
			*f.dst = key
			continue
		}
		if f.needed && f.dst.IsZero() {
			key, err := app.Prompt.CapturePublicKey(f.prompt)
			if err != nil {
				return realm.Realm{}, fmt.Errorf("--%s: %w", f.flag, err)
			}
			*f.dst = key
		}
	}
	if r.Owner.IsZero() {
		owner, err := app.GovernanceProgramID()
		if err != nil {
			return realm.Realm{}, err
		}
		r.Owner = owner
	}
	return r, nil
}

// ParsePublicKey decodes a base58 flag value, naming the flag on failure.
func ParsePublicKey(flag, value string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return key, nil
}
