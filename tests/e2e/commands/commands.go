// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package commands drives the quadratic CLI in-process for the e2e suites.
package commands

import (
	"bytes"
	"encoding/json"

	"github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/Deadghoost/governance-ui/cmd"
	"github.com/Deadghoost/governance-ui/pkg/application"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/ux"
	"github.com/Deadghoost/governance-ui/tests/e2e/utils"
)

// RPC backs every command run by this package.
var RPC = utils.NewFakeRPC()

// Run executes the CLI with args in non-interactive mode and returns what
// it printed.
func Run(args ...string) (string, error) {
	viper.Reset()
	app := application.New()
	app.NewRPC = func(endpoint string) application.RPCClient {
		RPC.Open(endpoint)
		return RPC
	}
	root := cmd.NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--non-interactive"))
	err := root.Execute()
	return out.String(), err
}

// RunJSON runs args with json output and decodes the result into v.
func RunJSON(v interface{}, args ...string) {
	out, err := Run(append(args, "--output", constants.OutputJSON)...)
	gomega.Expect(err).Should(gomega.BeNil(), out)
	gomega.Expect(json.Unmarshal([]byte(out), v)).Should(gomega.Succeed(), out)
}

func RealmFlags() []string {
	return []string{
		"--realm", utils.RealmKey.String(),
		"--mint", utils.MintKey.String(),
		"--authority", utils.AuthorityKey.String(),
	}
}

func RegistrarAddress() ux.AddressView {
	var view ux.AddressView
	RunJSON(&view, cmd.RegistrarCmd, "address",
		"--realm", utils.RealmKey.String(),
		"--mint", utils.MintKey.String(),
	)
	return view
}

func CreateRegistrar(extra ...string) ux.InstructionView {
	var view ux.InstructionView
	args := append([]string{cmd.RegistrarCmd, "create", "--payer", utils.PayerKey.String()}, RealmFlags()...)
	RunJSON(&view, append(args, extra...)...)
	return view
}

func ConfigureRegistrar(extra ...string) ux.InstructionView {
	var view ux.InstructionView
	args := append([]string{cmd.RegistrarCmd, "configure"}, RealmFlags()...)
	RunJSON(&view, append(args, extra...)...)
	return view
}

func DescribeRegistrars(args ...string) []ux.RegistrarView {
	var views []ux.RegistrarView
	RunJSON(&views, append([]string{cmd.RegistrarCmd, "describe"}, args...)...)
	return views
}

func ConfigSet(key, value string) {
	out, err := Run(cmd.ConfigCmd, "set", key, value)
	gomega.Expect(err).Should(gomega.BeNil(), out)
}

func ConfigGet(key string) string {
	out, err := Run(cmd.ConfigCmd, "get", key)
	gomega.Expect(err).Should(gomega.BeNil(), out)
	return out
}
