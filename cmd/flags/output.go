// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/pkg/constants"
)

const outputFlag = "output"

// AddOutputFlagToCmd registers --output and validates it before RunE.
func AddOutputFlagToCmd(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, outputFlag, "o", constants.OutputTable, "output format: table, json or yaml")

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return ValidateOutput(*output)
	}
}

func ValidateOutput(output string) error {
	switch output {
	case constants.OutputTable, constants.OutputJSON, constants.OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutput, output)
	}
}
