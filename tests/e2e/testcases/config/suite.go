// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/gagliardetto/solana-go/rpc"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Deadghoost/governance-ui/cmd"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/tests/e2e/commands"
	"github.com/Deadghoost/governance-ui/tests/e2e/utils"
)

var _ = ginkgo.Describe("[Config]", func() {
	ginkgo.BeforeEach(func() {
		commands.RPC.Reset()
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(utils.DeleteConfig()).Should(gomega.Succeed())
	})

	ginkgo.It("persists the cluster used by later commands", func() {
		commands.ConfigSet(constants.ConfigCluster, "devnet")
		gomega.Expect(utils.ConfigFilePath()).Should(gomega.BeAnExistingFile())
		gomega.Expect(commands.ConfigGet(constants.ConfigCluster)).Should(gomega.Equal("cluster = devnet\n"))

		commands.DescribeRegistrars(
			"--realm", utils.RealmKey.String(),
			"--mint", utils.MintKey.String(),
		)
		gomega.Expect(commands.RPC.Endpoints()).Should(gomega.Equal([]string{rpc.DevNet_RPC}))
	})

	ginkgo.It("lets a flag override the persisted program id", func() {
		custom := utils.TestKey("CustomProgram").String()
		commands.ConfigSet(constants.ConfigProgramID, utils.TestKey("StoredProgram").String())

		var view struct {
			ProgramID string `json:"programId"`
		}
		commands.RunJSON(&view, cmd.RegistrarCmd, "address",
			"--realm", utils.RealmKey.String(),
			"--mint", utils.MintKey.String(),
			"--"+constants.ConfigProgramID, custom,
		)
		gomega.Expect(view.ProgramID).Should(gomega.Equal(custom))
	})

	ginkgo.It("rejects unknown keys", func() {
		_, err := commands.Run(cmd.ConfigCmd, "get", "numNodes")
		gomega.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring("unknown configuration key")))
	})
})
