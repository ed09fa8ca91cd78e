// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registrarcmd

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/cmd/flags"
	"github.com/Deadghoost/governance-ui/pkg/ux"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

const (
	coefficientsFlag = "coefficients"
	predecessorFlag  = "predecessor"
	blockhashFlag    = "blockhash"
	feePayerFlag     = "fee-payer"
)

// instructionFlags are shared by create and configure.
type instructionFlags struct {
	realm        flags.RealmFlags
	coefficients string
	predecessor  string
	blockhash    string
	feePayer     string
	output       string
}

func addInstructionFlags(cmd *cobra.Command, f *instructionFlags) {
	flags.AddRealmFlagsToCmd(cmd, &f.realm, true)
	cmd.Flags().StringVar(&f.coefficients, coefficientsFlag, "",
		"curve coefficients a,b,c (default 1,0,0)")
	cmd.Flags().StringVar(&f.predecessor, predecessorFlag, "",
		"program id of the voter-weight plugin that runs before this one")
	cmd.Flags().StringVar(&f.blockhash, blockhashFlag, "",
		"recent blockhash; when set an unsigned transaction is printed as well")
	cmd.Flags().StringVar(&f.feePayer, feePayerFlag, "",
		"fee payer of the unsigned transaction (default: payer for create, authority for configure)")
	flags.AddOutputFlagToCmd(cmd, &f.output)
}

// parseCoefficients returns nil when the flag is empty so the builder
// applies the default curve.
func (f *instructionFlags) parseCoefficients() (*quadratic.Coefficients, error) {
	if f.coefficients == "" {
		return nil, nil
	}
	c, err := quadratic.ParseCoefficients(f.coefficients)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", coefficientsFlag, err)
	}
	return &c, nil
}

func (f *instructionFlags) parsePredecessor() (quadratic.Predecessor, error) {
	if f.predecessor == "" {
		return quadratic.NoPredecessor, nil
	}
	key, err := flags.ParsePublicKey(predecessorFlag, f.predecessor)
	if err != nil {
		return quadratic.NoPredecessor, err
	}
	return quadratic.PredecessorOf(key), nil
}

// unsignedTransaction wraps ix in a transaction message with no signatures
// and returns it base64 encoded.
func unsignedTransaction(ix solana.Instruction, blockhash string, feePayer solana.PublicKey) (string, error) {
	hash, err := solana.HashFromBase58(blockhash)
	if err != nil {
		return "", fmt.Errorf("invalid --%s %q: %w", blockhashFlag, blockhash, err)
	}
	tx, err := solana.NewTransaction([]solana.Instruction{ix}, hash, solana.TransactionPayer(feePayer))
	if err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// printInstruction renders ix, adding the unsigned transaction when a
// blockhash was given.
func printInstruction(f *instructionFlags, ix *quadratic.Instruction, defaultFeePayer solana.PublicKey, rent *uint64) error {
	view, err := ux.NewInstructionView(ix)
	if err != nil {
		return err
	}
	view.RentLamports = rent
	if f.blockhash != "" {
		feePayer := defaultFeePayer
		if f.feePayer != "" {
			if feePayer, err = flags.ParsePublicKey(feePayerFlag, f.feePayer); err != nil {
				return err
			}
		}
		if view.Transaction, err = unsignedTransaction(ix, f.blockhash, feePayer); err != nil {
			return err
		}
	}
	return ux.Render(ux.Logger.Writer(), f.output, view, func(w io.Writer) error {
		return ux.InstructionTable(w, view)
	})
}
