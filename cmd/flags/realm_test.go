// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/Deadghoost/governance-ui/pkg/application"
	"github.com/Deadghoost/governance-ui/pkg/config"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/prompts"
	"github.com/Deadghoost/governance-ui/pkg/prompts/mocks"
	"github.com/Deadghoost/governance-ui/sdk/realm"
)

func testKey(label string) solana.PublicKey {
	sum := sha256.Sum256([]byte(label))
	return solana.PublicKeyFromBytes(sum[:])
}

func newTestApp(t *testing.T, prompter prompts.Prompter) *application.App {
	viper.Reset()
	t.Cleanup(viper.Reset)
	app := application.New()
	app.Setup(t.TempDir(), luxlog.NewNoOpLogger(), config.New(), prompter)
	return app
}

// lookupProvider resolves every name to one descriptor and records the
// names asked for.
type lookupProvider struct {
	realm realm.Realm
	asked []string
}

func (p *lookupProvider) Realm(_ context.Context, name string) (realm.Realm, error) {
	p.asked = append(p.asked, name)
	return p.realm, nil
}

func (p *lookupProvider) Names() []string {
	return p.asked
}

func TestResolveRealmFromProvider(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter())
	provider := &lookupProvider{realm: realm.Realm{
		Address:       testKey("Ream1"),
		CommunityMint: testKey("Mint1"),
		Authority:     testKey("Auth1"),
		Owner:         testKey("Gov1"),
	}}

	r, err := ResolveRealmFrom(context.Background(), app, provider, RealmFlags{
		Name: "remote",
		Mint: testKey("Mint2").String(),
	}, true)
	require.NoError(err)
	require.Equal([]string{"remote"}, provider.asked)
	require.Equal(testKey("Ream1"), r.Address)
	require.Equal(testKey("Mint2"), r.CommunityMint)
	require.Equal(testKey("Gov1"), r.Owner)

	_, err = ResolveRealmFrom(context.Background(), app, nil, RealmFlags{Name: "remote"}, false)
	require.ErrorIs(err, realm.ErrRealmNotFound)
}

func TestResolveRealmFromFlags(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter())

	r, err := ResolveRealm(context.Background(), app, RealmFlags{
		Address:   testKey("Ream1").String(),
		Mint:      testKey("Mint1").String(),
		Authority: testKey("Auth1").String(),
	}, true)
	require.NoError(err)
	require.Equal(testKey("Auth1"), r.Authority)
	require.Equal(realm.DefaultGovernanceProgramID, r.Owner)
	require.NoError(r.Validate())
}

func TestResolveRealmUsesConfiguredGovernanceProgram(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter())
	viper.Set(constants.ConfigGovernanceProgramID, testKey("Gov1").String())

	r, err := ResolveRealm(context.Background(), app, RealmFlags{
		Address: testKey("Ream1").String(),
		Mint:    testKey("Mint1").String(),
	}, false)
	require.NoError(err)
	require.Equal(testKey("Gov1"), r.Owner)

	r, err = ResolveRealm(context.Background(), app, RealmFlags{
		Address:           testKey("Ream1").String(),
		Mint:              testKey("Mint1").String(),
		GovernanceProgram: testKey("Gov2").String(),
	}, false)
	require.NoError(err)
	require.Equal(testKey("Gov2"), r.Owner)
}

func TestResolveRealmByNameWithOverride(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter())
	path := filepath.Join(t.TempDir(), "realms.yaml")
	content := "realms:\n" +
		"  - name: mango\n" +
		"    address: " + testKey("Ream1").String() + "\n" +
		"    communityMint: " + testKey("Mint1").String() + "\n" +
		"    authority: " + testKey("Auth1").String() + "\n"
	require.NoError(os.WriteFile(path, []byte(content), 0o600))
	viper.Set(constants.ConfigRealmsFile, path)

	r, err := ResolveRealm(context.Background(), app, RealmFlags{
		Name:      "mango",
		Authority: testKey("Auth2").String(),
	}, true)
	require.NoError(err)
	require.Equal("mango", r.Name)
	require.Equal(testKey("Ream1"), r.Address)
	require.Equal(testKey("Auth2"), r.Authority)

	_, err = ResolveRealm(context.Background(), app, RealmFlags{Name: "apple"}, false)
	require.ErrorIs(err, realm.ErrRealmNotFound)
}

func TestResolveRealmPrompts(t *testing.T) {
	require := require.New(t)
	prompter := &mocks.Prompter{}
	prompter.On("CapturePublicKey", "Realm address").Return(testKey("Ream1"), nil)
	prompter.On("CapturePublicKey", "Governing token mint").Return(testKey("Mint1"), nil)
	app := newTestApp(t, prompter)

	r, err := ResolveRealm(context.Background(), app, RealmFlags{}, false)
	require.NoError(err)
	prompter.AssertExpectations(t)
	require.Equal(testKey("Ream1"), r.Address)
	require.Equal(testKey("Mint1"), r.CommunityMint)
	require.True(r.Authority.IsZero())
}

func TestResolveRealmErrors(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewNonInteractivePrompter())

	_, err := ResolveRealm(context.Background(), app, RealmFlags{}, false)
	require.ErrorIs(err, constants.ErrNoRealm)

	_, err = ResolveRealm(context.Background(), app, RealmFlags{Address: "bogus0", Mint: testKey("Mint1").String()}, false)
	require.ErrorContains(err, "--realm")

	_, err = ResolveRealm(context.Background(), app, RealmFlags{Address: testKey("Ream1").String()}, false)
	require.ErrorIs(err, prompts.ErrNonInteractive)
}

func TestValidateOutput(t *testing.T) {
	for _, output := range []string{constants.OutputTable, constants.OutputJSON, constants.OutputYAML} {
		require.NoError(t, ValidateOutput(output))
	}
	require.ErrorIs(t, ValidateOutput("xml"), constants.ErrUnknownOutput)
}
