// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registrarcmd

import (
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/cmd/flags"
	"github.com/Deadghoost/governance-ui/pkg/prompts"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

func newConfigureCmd() *cobra.Command {
	f := &instructionFlags{}
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Build the configureRegistrar instruction for a realm",
		Long: `Build the instruction that rewrites the coefficients and predecessor of an
existing registrar.

The full coefficient triple is always sent. Omitting --coefficients resets
the registrar to 1,0,0, and omitting --predecessor removes any predecessor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return configureRegistrar(cmd, f)
		},
	}
	addInstructionFlags(cmd, f)
	return cmd
}

func configureRegistrar(cmd *cobra.Command, f *instructionFlags) error {
	r, err := flags.ResolveRealm(cmd.Context(), app, f.realm, true)
	if err != nil {
		return err
	}
	coefficients, err := f.parseCoefficients()
	if err != nil {
		return err
	}
	if coefficients == nil {
		if coefficients, err = confirmDefaultCoefficients(); err != nil {
			return err
		}
	}
	predecessor, err := f.parsePredecessor()
	if err != nil {
		return err
	}
	client, err := app.QuadraticClient(false)
	if err != nil {
		return err
	}
	ix, err := client.ConfigureRegistrarInstruction(r, coefficients, predecessor)
	if err != nil {
		return err
	}
	return printInstruction(f, ix, r.Authority, nil)
}

// confirmDefaultCoefficients asks before a configure resets the curve. In
// non-interactive mode the reset goes ahead and nil is returned.
func confirmDefaultCoefficients() (*quadratic.Coefficients, error) {
	if _, ok := app.Prompt.(*prompts.NonInteractivePrompter); ok {
		return nil, nil
	}
	reset, err := app.Prompt.CaptureYesNo("No --coefficients given. Reset the registrar curve to " +
		quadratic.DefaultCoefficients.String() + "?")
	if err != nil || reset {
		return nil, err
	}
	c, err := app.Prompt.CaptureCoefficients("Coefficients a,b,c")
	if err != nil {
		return nil, err
	}
	return &c, nil
}
