// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/ux"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(ux.Logger.Writer())
			table.Header("Key", "Value")
			for _, key := range constants.ConfigKeys {
				_ = table.Append([]string{key, effectiveValue(key)})
			}
			return table.Render()
		},
	}
}
