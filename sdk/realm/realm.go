// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package realm describes SPL-governance realms as read-only inputs to the
// registrar tooling.
package realm

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DefaultGovernanceProgramID is the SPL-governance program deployed on
// mainnet-beta and devnet.
var DefaultGovernanceProgramID = solana.MustPublicKeyFromBase58("GovER5Lthms3bLBqWub97yVrMmEogzX7xNjdXpPPCVZw")

var (
	ErrMissingAddress       = errors.New("realm address is required")
	ErrMissingCommunityMint = errors.New("realm community mint is required")
	ErrMissingAuthority     = errors.New("realm authority is required")
	ErrMissingOwner         = errors.New("realm governance program is required")
)

// Realm is the subset of a governance realm the registrar instructions need.
type Realm struct {
	Name          string
	Address       solana.PublicKey
	CommunityMint solana.PublicKey
	Authority     solana.PublicKey
	// Owner is the governance program that owns the realm account.
	Owner solana.PublicKey
}

// ValidateForLookup checks the fields needed to derive the registrar address.
func (r Realm) ValidateForLookup() error {
	if r.Address.IsZero() {
		return ErrMissingAddress
	}
	if r.CommunityMint.IsZero() {
		return ErrMissingCommunityMint
	}
	return nil
}

// Validate checks every field the create instruction references.
func (r Realm) Validate() error {
	if err := r.ValidateForLookup(); err != nil {
		return err
	}
	if r.Authority.IsZero() {
		return ErrMissingAuthority
	}
	if r.Owner.IsZero() {
		return ErrMissingOwner
	}
	return nil
}

func (r Realm) String() string {
	if r.Name != "" {
		return fmt.Sprintf("%s (%s)", r.Name, r.Address)
	}
	return r.Address.String()
}
