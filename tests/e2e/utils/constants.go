// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"
)

const (
	RealmsFileName = "realms.yaml"

	// realm names in the generated realms file
	AlphaRealm = "alpha"
	BetaRealm  = "beta"

	LocalRPCURL = "http://127.0.0.1:8899"
)

var (
	RealmKey     = TestKey("Ream1")
	MintKey      = TestKey("Mint1")
	AuthorityKey = TestKey("Auth1")
	PayerKey     = TestKey("Pay1")
	PrevPlugin   = TestKey("Prev1")

	BetaRealmKey = TestKey("Ream2")
	BetaMintKey  = TestKey("Mint2")
)

// TestKey returns a stable public key for label.
func TestKey(label string) solana.PublicKey {
	sum := sha256.Sum256([]byte(label))
	return solana.PublicKeyFromBytes(sum[:])
}
