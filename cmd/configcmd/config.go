// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Deadghoost/governance-ui/pkg/application"
)

var app *application.App

func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for the quadratic CLI",
		Long: `Customize configuration for the quadratic CLI.

Settings live in ~/.quadratic/cli.json. Flags override environment
variables (QUADRATIC_RPC_URL, ...), which override the file.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
