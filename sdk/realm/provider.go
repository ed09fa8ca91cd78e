// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package realm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gagliardetto/solana-go"
	"gopkg.in/yaml.v3"
)

var ErrRealmNotFound = errors.New("realm not found")

// Provider resolves realm descriptors by name.
type Provider interface {
	Realm(ctx context.Context, name string) (Realm, error)
	Names() []string
}

// StaticProvider serves descriptors held in memory.
type StaticProvider map[string]Realm

func (p StaticProvider) Realm(_ context.Context, name string) (Realm, error) {
	r, ok := p[name]
	if !ok {
		return Realm{}, fmt.Errorf("%w: %q", ErrRealmNotFound, name)
	}
	return r, nil
}

func (p StaticProvider) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type realmsFile struct {
	Realms []realmEntry `yaml:"realms"`
}

type realmEntry struct {
	Name              string `yaml:"name"`
	Address           string `yaml:"address"`
	CommunityMint     string `yaml:"communityMint"`
	Authority         string `yaml:"authority"`
	GovernanceProgram string `yaml:"governanceProgram,omitempty"`
}

// LoadFile reads a YAML realms file:
//
//	realms:
//	  - name: mango
//	    address: <base58>
//	    communityMint: <base58>
//	    authority: <base58>
//	    governanceProgram: <base58, optional>
func LoadFile(path string) (StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read realms file: %w", err)
	}
	return Parse(data)
}

// Parse decodes the YAML realms format accepted by LoadFile.
func Parse(data []byte) (StaticProvider, error) {
	var file realmsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse realms file: %w", err)
	}
	provider := make(StaticProvider, len(file.Realms))
	for i, entry := range file.Realms {
		if entry.Name == "" {
			return nil, fmt.Errorf("realm entry %d has no name", i)
		}
		if _, dup := provider[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate realm %q", entry.Name)
		}
		r, err := entry.toRealm()
		if err != nil {
			return nil, fmt.Errorf("realm %q: %w", entry.Name, err)
		}
		provider[entry.Name] = r
	}
	return provider, nil
}

func (e realmEntry) toRealm() (Realm, error) {
	r := Realm{Name: e.Name, Owner: DefaultGovernanceProgramID}
	fields := []struct {
		name  string
		value string
		dst   *solana.PublicKey
	}{
		{"address", e.Address, &r.Address},
		{"communityMint", e.CommunityMint, &r.CommunityMint},
		{"authority", e.Authority, &r.Authority},
		{"governanceProgram", e.GovernanceProgram, &r.Owner},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		key, err := solana.PublicKeyFromBase58(f.value)
		if err != nil {
			return Realm{}, fmt.Errorf("invalid %s %q: %w", f.name, f.value, err)
		}
		*f.dst = key
	}
	return r, r.ValidateForLookup()
}
