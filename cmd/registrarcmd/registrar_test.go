// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registrarcmd

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	luxlog "github.com/luxfi/log"
	"github.com/mr-tron/base58"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deadghoost/governance-ui/pkg/application"
	"github.com/Deadghoost/governance-ui/pkg/config"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/prompts"
	"github.com/Deadghoost/governance-ui/pkg/prompts/mocks"
	"github.com/Deadghoost/governance-ui/pkg/ux"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
	"github.com/Deadghoost/governance-ui/sdk/realm"
)

func testKey(label string) solana.PublicKey {
	sum := sha256.Sum256([]byte(label))
	return solana.PublicKeyFromBytes(sum[:])
}

var (
	realmKey     = testKey("Ream1")
	mintKey      = testKey("Mint1")
	authorityKey = testKey("Auth1")
	payerKey     = testKey("Pay1")
)

// fakeRPC serves accounts from memory and a fixed rent quote.
type fakeRPC struct {
	accounts map[solana.PublicKey]*rpc.Account
	rent     uint64
}

func (f *fakeRPC) GetAccountInfo(_ context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	a, ok := f.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: a}, nil
}

func (f *fakeRPC) GetMinimumBalanceForRentExemption(_ context.Context, dataSize uint64, _ rpc.CommitmentType) (uint64, error) {
	if dataSize != quadratic.RegistrarAccountSize {
		return 0, errors.New("unexpected data size")
	}
	return f.rent, nil
}

func newTestApp(t *testing.T, prompter prompts.Prompter, rpcClient *fakeRPC) *application.App {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	app := application.New()
	app.Setup(t.TempDir(), luxlog.NewNoOpLogger(), config.New(), prompter)
	app.NewRPC = func(string) application.RPCClient { return rpcClient }
	return app
}

func run(t *testing.T, app *application.App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ux.SetUserLog(luxlog.NewNoOpLogger(), &out)
	cmd := NewCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func realmArgs() []string {
	return []string{
		"--realm", realmKey.String(),
		"--mint", mintKey.String(),
		"--authority", authorityKey.String(),
	}
}

func decodeInstruction(t *testing.T, out string) ux.InstructionView {
	t.Helper()
	var view ux.InstructionView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	return view
}

func TestAddress(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})

	out, err := run(t, app, "address", "--realm", realmKey.String(), "--mint", mintKey.String(), "-o", "json")
	require.NoError(err)

	var view ux.AddressView
	require.NoError(json.Unmarshal([]byte(out), &view))
	want, err := quadratic.GetRegistrarPDA(realmKey, mintKey, quadratic.DefaultProgramID)
	require.NoError(err)
	require.Equal(want.Address.String(), view.Registrar)
	require.Equal(want.Bump, view.Bump)
	require.Equal(quadratic.DefaultProgramID.String(), view.ProgramID)
}

func TestAddressWithoutRealmNonInteractive(t *testing.T) {
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})
	_, err := run(t, app, "address")
	require.ErrorIs(t, err, constants.ErrNoRealm)
}

func TestCreateDefaults(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})

	args := append([]string{"create", "--payer", payerKey.String(), "-o", "json"}, realmArgs()...)
	out, err := run(t, app, args...)
	require.NoError(err)

	view := decodeInstruction(t, out)
	require.Equal("createRegistrar", view.Instruction)
	require.Equal(quadratic.DefaultCoefficients, view.Coefficients)
	require.False(view.UsePreviousVoterWeightPlugin)
	require.Len(view.Accounts, 7)
	require.Equal(realmKey.String(), view.Accounts[1].Address)
	require.Equal(realm.DefaultGovernanceProgramID.String(), view.Accounts[2].Address)
	require.Equal(authorityKey.String(), view.Accounts[3].Address)
	require.True(view.Accounts[3].Signer)
	require.Equal(payerKey.String(), view.Accounts[5].Address)
	require.True(view.Accounts[5].Signer)
	require.True(view.Accounts[5].Writable)
	require.Nil(view.RentLamports)
	require.Empty(view.Transaction)

	data, err := base58.Decode(view.Data)
	require.NoError(err)
	kind, decoded, err := quadratic.DecodeInstructionData(data)
	require.NoError(err)
	require.Equal(quadratic.CreateRegistrar, kind)
	require.Equal(quadratic.DefaultCoefficients, decoded.Coefficients)
}

func TestCreatePromptsForMissingAuthority(t *testing.T) {
	require := require.New(t)
	prompter := &mocks.Prompter{}
	prompter.On("CapturePublicKey", "Realm authority").Return(authorityKey, nil)
	app := newTestApp(t, prompter, &fakeRPC{})

	out, err := run(t, app, "create",
		"--realm", realmKey.String(),
		"--mint", mintKey.String(),
		"--payer", payerKey.String(),
		"-o", "json",
	)
	require.NoError(err)
	prompter.AssertExpectations(t)
	require.Equal(authorityKey.String(), decodeInstruction(t, out).Accounts[3].Address)
}

func TestCreateMissingAuthorityNonInteractive(t *testing.T) {
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})
	_, err := run(t, app, "create",
		"--realm", realmKey.String(),
		"--mint", mintKey.String(),
		"--payer", payerKey.String(),
	)
	require.ErrorIs(t, err, prompts.ErrNonInteractive)
}

func TestCreatePayerFromPrompt(t *testing.T) {
	require := require.New(t)
	prompter := &mocks.Prompter{}
	prompter.On("CapturePublicKey", "Payer").Return(payerKey, nil)
	app := newTestApp(t, prompter, &fakeRPC{})

	out, err := run(t, app, append([]string{"create", "-o", "json"}, realmArgs()...)...)
	require.NoError(err)
	prompter.AssertExpectations(t)
	require.Equal(payerKey.String(), decodeInstruction(t, out).Accounts[5].Address)
}

func writeKeypair(t *testing.T, path string) solana.PublicKey {
	t.Helper()
	wallet := solana.NewWallet()
	raw := make([]int, len(wallet.PrivateKey))
	for i, b := range wallet.PrivateKey {
		raw[i] = int(b)
	}
	content, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return wallet.PublicKey()
}

func TestCreatePayerFromDefaultKeypair(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})
	home, err := os.UserHomeDir()
	require.NoError(err)
	payer := writeKeypair(t, filepath.Join(home, ".config", "solana", "id.json"))

	out, err := run(t, app, append([]string{"create", "-o", "json"}, realmArgs()...)...)
	require.NoError(err)
	require.Equal(payer.String(), decodeInstruction(t, out).Accounts[5].Address)
}

func TestCreatePayerFromConfiguredKeypair(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})
	path := filepath.Join(t.TempDir(), "payer.json")
	payer := writeKeypair(t, path)
	viper.Set(constants.ConfigKeypair, path)

	out, err := run(t, app, append([]string{"create", "-o", "json"}, realmArgs()...)...)
	require.NoError(err)
	require.Equal(payer.String(), decodeInstruction(t, out).Accounts[5].Address)
}

func TestCreateWithRentAndTransaction(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{rent: 2_895_360})
	blockhash := solana.HashFromBytes(testKey("blockhash").Bytes())

	args := append([]string{
		"create",
		"--payer", payerKey.String(),
		"--coefficients", "2,0.5,1",
		"--estimate-rent",
		"--blockhash", blockhash.String(),
		"-o", "json",
	}, realmArgs()...)
	out, err := run(t, app, args...)
	require.NoError(err)

	view := decodeInstruction(t, out)
	require.Equal(quadratic.Coefficients{A: 2, B: 0.5, C: 1}, view.Coefficients)
	require.NotNil(view.RentLamports)
	require.Equal(uint64(2_895_360), *view.RentLamports)

	raw, err := base64.StdEncoding.DecodeString(view.Transaction)
	require.NoError(err)
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	require.NoError(err)
	require.Equal(payerKey, tx.Message.AccountKeys[0])
	require.Equal(blockhash, tx.Message.RecentBlockhash)
	require.Len(tx.Message.Instructions, 1)
}

func TestCreateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		extra []string
	}{
		{name: "two coefficients", extra: []string{"--coefficients", "1,0"}},
		{name: "bad predecessor", extra: []string{"--predecessor", "not-a-key"}},
		{name: "bad blockhash", extra: []string{"--blockhash", "???"}},
		{name: "bad output", extra: []string{"-o", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})
			args := append([]string{"create", "--payer", payerKey.String()}, realmArgs()...)
			_, err := run(t, app, append(args, tt.extra...)...)
			require.Error(t, err)
		})
	}
}

func TestConfigureWithPredecessor(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})
	predecessor := testKey("Prev1")

	args := append([]string{
		"configure",
		"--coefficients", "1,2,3",
		"--predecessor", predecessor.String(),
		"-o", "json",
	}, realmArgs()...)
	out, err := run(t, app, args...)
	require.NoError(err)

	view := decodeInstruction(t, out)
	require.Equal("configureRegistrar", view.Instruction)
	require.True(view.UsePreviousVoterWeightPlugin)
	require.Len(view.Accounts, 4)
	require.Equal(predecessor.String(), view.Accounts[3].Address)
	require.False(view.Accounts[3].Signer)
	require.False(view.Accounts[3].Writable)
}

func TestConfigureTable(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})

	out, err := run(t, app, append([]string{"configure"}, realmArgs()...)...)
	require.NoError(err)
	require.Contains(out, "configureRegistrar")
	require.Contains(out, authorityKey.String())
}

func writeRealmsFile(t *testing.T) string {
	t.Helper()
	content := "realms:\n" +
		"  - name: alpha\n" +
		"    address: " + realmKey.String() + "\n" +
		"    communityMint: " + mintKey.String() + "\n" +
		"    authority: " + authorityKey.String() + "\n" +
		"  - name: beta\n" +
		"    address: " + testKey("Ream2").String() + "\n" +
		"    communityMint: " + testKey("Mint2").String() + "\n"
	path := filepath.Join(t.TempDir(), "realms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDescribeAll(t *testing.T) {
	require := require.New(t)

	pda, err := quadratic.GetRegistrarPDA(realmKey, mintKey, quadratic.DefaultProgramID)
	require.NoError(err)
	data, err := quadratic.EncodeRegistrar(quadratic.Registrar{
		GovernanceProgramID: realm.DefaultGovernanceProgramID,
		Realm:               realmKey,
		GoverningTokenMint:  mintKey,
		Coefficients:        quadratic.Coefficients{A: 1, B: 2, C: 3},
	})
	require.NoError(err)
	rpcClient := &fakeRPC{accounts: map[solana.PublicKey]*rpc.Account{
		pda.Address: {Owner: quadratic.DefaultProgramID, Data: rpc.DataBytesOrJSONFromBytes(data)},
	}}

	app := newTestApp(t, prompts.NewNonInteractivePrompter(), rpcClient)
	viper.Set(constants.ConfigRealmsFile, writeRealmsFile(t))

	out, err := run(t, app, "describe", "--all", "-o", "json")
	require.NoError(err)

	var views []ux.RegistrarView
	require.NoError(json.Unmarshal([]byte(out), &views))
	require.Len(views, 2)
	require.Equal(quadratic.Found.String(), views[0].Status)
	require.Equal(pda.Address.String(), views[0].Registrar)
	require.NotNil(views[0].Coefficients)
	require.Equal(quadratic.Coefficients{A: 1, B: 2, C: 3}, *views[0].Coefficients)
	require.Equal(quadratic.NotFound.String(), views[1].Status)
	require.Nil(views[1].Coefficients)
}

func TestDescribeByNameSingle(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})
	viper.Set(constants.ConfigRealmsFile, writeRealmsFile(t))

	out, err := run(t, app, "describe", "beta", "-o", "json")
	require.NoError(err)

	var views []ux.RegistrarView
	require.NoError(json.Unmarshal([]byte(out), &views))
	require.Len(views, 1)
	require.Equal(quadratic.NotFound.String(), views[0].Status)

	_, err = run(t, app, "describe", "gamma")
	require.ErrorIs(err, realm.ErrRealmNotFound)
}

func TestDescribePromptsForRealmsFile(t *testing.T) {
	require := require.New(t)
	path := writeRealmsFile(t)
	prompter := &mocks.Prompter{}
	prompter.On("CaptureExistingFilepath", mock.Anything).Return(path, nil)
	app := newTestApp(t, prompter, &fakeRPC{})

	out, err := run(t, app, "describe", "alpha", "-o", "yaml")
	require.NoError(err)
	prompter.AssertExpectations(t)
	require.Contains(out, "status: "+quadratic.NotFound.String())
}

func TestConfigureAsksBeforeResettingCurve(t *testing.T) {
	require := require.New(t)
	prompter := &mocks.Prompter{}
	prompter.On("CaptureYesNo", mock.Anything).Return(false, nil)
	prompter.On("CaptureCoefficients", mock.Anything).Return(quadratic.Coefficients{A: 3, B: 2, C: 1}, nil)
	app := newTestApp(t, prompter, &fakeRPC{})

	out, err := run(t, app, append([]string{"configure", "-o", "json"}, realmArgs()...)...)
	require.NoError(err)
	prompter.AssertExpectations(t)
	require.Equal(quadratic.Coefficients{A: 3, B: 2, C: 1}, decodeInstruction(t, out).Coefficients)
}

func TestDescribePicksRealmFromFile(t *testing.T) {
	require := require.New(t)
	prompter := &mocks.Prompter{}
	prompter.On("CaptureList", "Which realm?", []string{"alpha", "beta"}).Return("beta", nil)
	app := newTestApp(t, prompter, &fakeRPC{})
	viper.Set(constants.ConfigRealmsFile, writeRealmsFile(t))

	out, err := run(t, app, "describe", "-o", "json")
	require.NoError(err)
	prompter.AssertExpectations(t)

	var views []ux.RegistrarView
	require.NoError(json.Unmarshal([]byte(out), &views))
	require.Len(views, 1)
	want, err := quadratic.GetRegistrarPDA(testKey("Ream2"), testKey("Mint2"), quadratic.DefaultProgramID)
	require.NoError(err)
	require.Equal(want.Address.String(), views[0].Registrar)
}

func TestDescribeSingleRealmPrintsList(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter(), &fakeRPC{})

	out, err := run(t, app, "describe", "--realm", realmKey.String(), "--mint", mintKey.String(), "-o", "json")
	require.NoError(err)

	var views []ux.RegistrarView
	require.NoError(json.Unmarshal([]byte(out), &views))
	require.Len(views, 1)
	pda, err := quadratic.GetRegistrarPDA(realmKey, mintKey, quadratic.DefaultProgramID)
	require.NoError(err)
	require.Equal(pda.Address.String(), views[0].Registrar)
	require.Equal(quadratic.NotFound.String(), views[0].Status)

	out, err = run(t, app, "describe", "--realm", realmKey.String(), "--mint", mintKey.String(), "-o", "yaml")
	require.NoError(err)
	require.True(strings.HasPrefix(strings.TrimSpace(out), "- "), out)
}
