// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package realm

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func testKey(label string) solana.PublicKey {
	sum := sha256.Sum256([]byte(label))
	return solana.PublicKeyFromBytes(sum[:])
}

func TestParse(t *testing.T) {
	require := require.New(t)
	gov := testKey("Gov1")
	data := []byte(`realms:
  - name: mango
    address: ` + testKey("Ream1").String() + `
    communityMint: ` + testKey("Mint1").String() + `
    authority: ` + testKey("Auth1").String() + `
    governanceProgram: ` + gov.String() + `
  - name: lookup-only
    address: ` + testKey("Ream2").String() + `
    communityMint: ` + testKey("Mint2").String() + `
`)
	provider, err := Parse(data)
	require.NoError(err)
	require.Equal([]string{"lookup-only", "mango"}, provider.Names())

	mango, err := provider.Realm(context.Background(), "mango")
	require.NoError(err)
	require.Equal("mango", mango.Name)
	require.Equal(testKey("Ream1"), mango.Address)
	require.Equal(gov, mango.Owner)
	require.NoError(mango.Validate())

	lookup, err := provider.Realm(context.Background(), "lookup-only")
	require.NoError(err)
	require.Equal(DefaultGovernanceProgramID, lookup.Owner)
	require.NoError(lookup.ValidateForLookup())
	require.ErrorIs(lookup.Validate(), ErrMissingAuthority)

	_, err = provider.Realm(context.Background(), "missing")
	require.ErrorIs(err, ErrRealmNotFound)
}

func TestParseErrors(t *testing.T) {
	address := testKey("Ream1").String()
	mint := testKey("Mint1").String()
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "no name",
			data: "realms:\n  - address: " + address + "\n    communityMint: " + mint + "\n",
		},
		{
			name: "duplicate",
			data: "realms:\n  - name: a\n    address: " + address + "\n    communityMint: " + mint +
				"\n  - name: a\n    address: " + address + "\n    communityMint: " + mint + "\n",
		},
		{
			name: "bad key",
			data: "realms:\n  - name: a\n    address: nope0\n    communityMint: " + mint + "\n",
		},
		{
			name: "missing mint",
			data: "realms:\n  - name: a\n    address: " + address + "\n",
			want: ErrMissingCommunityMint,
		},
		{
			name: "not yaml",
			data: "realms: [",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "realms.yaml")
	require.NoError(os.WriteFile(path, []byte("realms: []\n"), 0o600))
	provider, err := LoadFile(path)
	require.NoError(err)
	require.Empty(provider.Names())
}

func TestRealmValidate(t *testing.T) {
	full := Realm{
		Address:       testKey("Ream1"),
		CommunityMint: testKey("Mint1"),
		Authority:     testKey("Auth1"),
		Owner:         testKey("Gov1"),
	}
	tests := []struct {
		name   string
		mutate func(*Realm)
		want   error
	}{
		{"complete", func(*Realm) {}, nil},
		{"no address", func(r *Realm) { r.Address = solana.PublicKey{} }, ErrMissingAddress},
		{"no mint", func(r *Realm) { r.CommunityMint = solana.PublicKey{} }, ErrMissingCommunityMint},
		{"no authority", func(r *Realm) { r.Authority = solana.PublicKey{} }, ErrMissingAuthority},
		{"no owner", func(r *Realm) { r.Owner = solana.PublicKey{} }, ErrMissingOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := full
			tt.mutate(&r)
			err := r.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}
