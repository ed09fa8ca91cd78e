// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registrar

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Deadghoost/governance-ui/cmd"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
	"github.com/Deadghoost/governance-ui/sdk/realm"
	"github.com/Deadghoost/governance-ui/tests/e2e/commands"
	"github.com/Deadghoost/governance-ui/tests/e2e/utils"
)

var _ = ginkgo.Describe("[Registrar]", func() {
	ginkgo.BeforeEach(func() {
		commands.RPC.Reset()
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(utils.DeleteConfig()).Should(gomega.Succeed())
	})

	ginkgo.It("derives the same address as the SDK", func() {
		view := commands.RegistrarAddress()
		pda, err := quadratic.GetRegistrarPDA(utils.RealmKey, utils.MintKey, quadratic.DefaultProgramID)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(view.Registrar).Should(gomega.Equal(pda.Address.String()))
		gomega.Expect(view.Bump).Should(gomega.Equal(pda.Bump))

		again := commands.RegistrarAddress()
		gomega.Expect(again).Should(gomega.Equal(view))
	})

	ginkgo.It("builds createRegistrar with the default curve", func() {
		view := commands.CreateRegistrar()
		gomega.Expect(view.Instruction).Should(gomega.Equal("createRegistrar"))
		gomega.Expect(view.Coefficients).Should(gomega.Equal(quadratic.DefaultCoefficients))
		gomega.Expect(view.UsePreviousVoterWeightPlugin).Should(gomega.BeFalse())

		addresses := make([]string, len(view.Accounts))
		for i, a := range view.Accounts {
			addresses[i] = a.Address
		}
		gomega.Expect(addresses).Should(gomega.Equal([]string{
			view.Registrar,
			utils.RealmKey.String(),
			realm.DefaultGovernanceProgramID.String(),
			utils.AuthorityKey.String(),
			utils.MintKey.String(),
			utils.PayerKey.String(),
			solana.SystemProgramID.String(),
		}))

		data, err := base58.Decode(view.Data)
		gomega.Expect(err).Should(gomega.BeNil())
		kind, args, err := quadratic.DecodeInstructionData(data)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(kind).Should(gomega.Equal(quadratic.CreateRegistrar))
		gomega.Expect(args.UsePreviousVoterWeightPlugin).Should(gomega.BeFalse())
	})

	ginkgo.It("appends the predecessor as the last account", func() {
		view := commands.CreateRegistrar("--predecessor", utils.PrevPlugin.String())
		gomega.Expect(view.Accounts).Should(gomega.HaveLen(8))
		last := view.Accounts[7]
		gomega.Expect(last.Address).Should(gomega.Equal(utils.PrevPlugin.String()))
		gomega.Expect(last.Signer).Should(gomega.BeFalse())
		gomega.Expect(last.Writable).Should(gomega.BeFalse())
		gomega.Expect(view.UsePreviousVoterWeightPlugin).Should(gomega.BeTrue())
	})

	ginkgo.It("quotes rent and prints an unsigned transaction", func() {
		commands.RPC.Rent = 2_895_360
		blockhash := solana.HashFromBytes(utils.TestKey("blockhash").Bytes())
		view := commands.CreateRegistrar("--estimate-rent", "--blockhash", blockhash.String())
		gomega.Expect(view.RentLamports).ShouldNot(gomega.BeNil())
		gomega.Expect(*view.RentLamports).Should(gomega.Equal(uint64(2_895_360)))
		gomega.Expect(view.Transaction).ShouldNot(gomega.BeEmpty())
	})

	ginkgo.It("builds configureRegistrar with three accounts", func() {
		view := commands.ConfigureRegistrar("--coefficients", "1,0.5,2")
		gomega.Expect(view.Instruction).Should(gomega.Equal("configureRegistrar"))
		gomega.Expect(view.Accounts).Should(gomega.HaveLen(3))
		gomega.Expect(view.Coefficients).Should(gomega.Equal(quadratic.Coefficients{A: 1, B: 0.5, C: 2}))
	})

	ginkgo.It("reports found and missing registrars from a realms file", func() {
		realmsFile, err := utils.WriteRealmsFile(ginkgo.GinkgoT().TempDir())
		gomega.Expect(err).Should(gomega.BeNil())

		pda, err := quadratic.GetRegistrarPDA(utils.RealmKey, utils.MintKey, quadratic.DefaultProgramID)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(commands.RPC.StoreRegistrar(pda.Address, quadratic.DefaultProgramID, quadratic.Registrar{
			GovernanceProgramID: realm.DefaultGovernanceProgramID,
			Realm:               utils.RealmKey,
			GoverningTokenMint:  utils.MintKey,
			Coefficients:        quadratic.DefaultCoefficients,
		})).Should(gomega.Succeed())

		views := commands.DescribeRegistrars("--all", "--"+constants.ConfigRealmsFile, realmsFile)
		gomega.Expect(views).Should(gomega.HaveLen(2))
		gomega.Expect(views[0].Status).Should(gomega.Equal(quadratic.Found.String()))
		gomega.Expect(views[1].Status).Should(gomega.Equal(quadratic.NotFound.String()))
	})

	ginkgo.It("reports a registrar owned by another program as a decode error", func() {
		pda, err := quadratic.GetRegistrarPDA(utils.RealmKey, utils.MintKey, quadratic.DefaultProgramID)
		gomega.Expect(err).Should(gomega.BeNil())
		data, err := quadratic.EncodeRegistrar(quadratic.Registrar{Coefficients: quadratic.DefaultCoefficients})
		gomega.Expect(err).Should(gomega.BeNil())
		commands.RPC.StoreAccount(pda.Address, solana.SystemProgramID, data)

		views := commands.DescribeRegistrars(
			"--realm", utils.RealmKey.String(),
			"--mint", utils.MintKey.String(),
		)
		gomega.Expect(views).Should(gomega.HaveLen(1))
		gomega.Expect(views[0].Status).Should(gomega.Equal(quadratic.DecodeError.String()))
		gomega.Expect(views[0].Error).Should(gomega.ContainSubstring(quadratic.ErrWrongOwner.Error()))
	})

	ginkgo.It("fails without a realm in non-interactive mode", func() {
		_, err := commands.Run(cmd.RegistrarCmd, "address")
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrNoRealm))
	})

	ginkgo.It("uses --rpc-url over the cluster", func() {
		commands.DescribeRegistrars(
			"--realm", utils.RealmKey.String(),
			"--mint", utils.MintKey.String(),
			"--"+constants.ConfigRPCURL, utils.LocalRPCURL,
		)
		gomega.Expect(commands.RPC.Endpoints()).Should(gomega.Equal([]string{utils.LocalRPCURL}))
	})
})
