// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registrarcmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/cmd/flags"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/sdk/keychain"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

const payerFlag = "payer"

type createFlags struct {
	instructionFlags
	payer        string
	estimateRent bool
}

func newCreateCmd() *cobra.Command {
	f := &createFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Build the createRegistrar instruction for a realm",
		Long: `Build the instruction that creates the registrar of a realm.

The payer funds the registrar account. Give it with --payer, or point
--keypair at a solana-keygen file to use its public key. Without either,
the solana CLI default keypair (~/.config/solana/id.json) is used when it
exists, and the payer is prompted for otherwise. Coefficients
default to 1,0,0, the square-root weighting. With --predecessor the
registrar chains after another voter-weight plugin.

EXAMPLES:

  quadratic registrar create --realm <REALM> --mint <MINT> --authority <AUTH> --payer <PAYER>
  quadratic registrar create --realms-file realms.yaml --name mango \
    --keypair ~/.config/solana/id.json --coefficients 1,0,0 --estimate-rent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return createRegistrar(cmd, f)
		},
	}
	addInstructionFlags(cmd, &f.instructionFlags)
	cmd.Flags().StringVar(&f.payer, payerFlag, "", "account paying for the registrar (overrides --keypair)")
	cmd.Flags().BoolVar(&f.estimateRent, "estimate-rent", false,
		"query the cluster for the rent-exempt balance of the registrar account")
	return cmd
}

func createRegistrar(cmd *cobra.Command, f *createFlags) error {
	r, err := flags.ResolveRealm(cmd.Context(), app, f.realm, true)
	if err != nil {
		return err
	}
	payer, err := resolvePayer(f.payer)
	if err != nil {
		return err
	}
	coefficients, err := f.parseCoefficients()
	if err != nil {
		return err
	}
	predecessor, err := f.parsePredecessor()
	if err != nil {
		return err
	}
	client, err := app.QuadraticClient(false)
	if err != nil {
		return err
	}
	ix, err := client.CreateRegistrarInstruction(r, payer, coefficients, predecessor)
	if err != nil {
		return err
	}

	var rent *uint64
	if f.estimateRent {
		lamports, err := estimateRent(cmd.Context())
		if err != nil {
			return err
		}
		rent = &lamports
	}
	return printInstruction(&f.instructionFlags, ix, payer, rent)
}

// resolvePayer prefers --payer, then the configured keypair, then the solana
// CLI default keypair, then a prompt.
func resolvePayer(payerFlagValue string) (solana.PublicKey, error) {
	if payerFlagValue != "" {
		return flags.ParsePublicKey(payerFlag, payerFlagValue)
	}
	if keyPath := app.Conf.GetConfigStringValue(constants.ConfigKeypair); keyPath != "" {
		return payerFromKeypair(keyPath)
	}
	payer, err := payerFromKeypair(keychain.DefaultKeypairPath)
	if err == nil {
		return payer, nil
	}
	if !errors.Is(err, keychain.ErrNoKeypair) {
		return solana.PublicKey{}, err
	}
	payer, err = app.Prompt.CapturePublicKey("Payer")
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("--%s: %w", payerFlag, err)
	}
	return payer, nil
}

func payerFromKeypair(keyPath string) (solana.PublicKey, error) {
	kc, err := keychain.NewKeychain(keyPath)
	if err != nil {
		return solana.PublicKey{}, err
	}
	app.Log.Debug("payer from keypair", "path", kc.Path(), "payer", kc.Address().String())
	return kc.Address(), nil
}

func estimateRent(ctx context.Context) (uint64, error) {
	client, err := app.RPC()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	lamports, err := client.GetMinimumBalanceForRentExemption(ctx, quadratic.RegistrarAccountSize, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate rent: %w", err)
	}
	return lamports, nil
}
