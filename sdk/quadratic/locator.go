// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quadratic

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	lru "github.com/hashicorp/golang-lru"
)

// RegistrarSeed is the literal seed of every registrar PDA.
const RegistrarSeed = "registrar"

const defaultLocatorCacheSize = 1024

// RegistrarPDA is a derived registrar address with the bump seed that put it
// off the ed25519 curve.
type RegistrarPDA struct {
	Address solana.PublicKey
	Bump    uint8
}

// RegistrarSeeds returns the seeds in the order the plugin program checks them.
func RegistrarSeeds(realm, governingTokenMint solana.PublicKey) [][]byte {
	return [][]byte{
		[]byte(RegistrarSeed),
		realm.Bytes(),
		governingTokenMint.Bytes(),
	}
}

// GetRegistrarPDA derives the registrar of realm for governingTokenMint under
// programID. Equal inputs always produce equal outputs.
func GetRegistrarPDA(realm, governingTokenMint, programID solana.PublicKey) (RegistrarPDA, error) {
	address, bump, err := solana.FindProgramAddress(RegistrarSeeds(realm, governingTokenMint), programID)
	if err != nil {
		return RegistrarPDA{}, fmt.Errorf("failed to derive registrar address for realm %s: %w", realm, err)
	}
	return RegistrarPDA{Address: address, Bump: bump}, nil
}

// Locator derives registrar addresses for a single plugin program.
type Locator interface {
	RegistrarPDA(realm, governingTokenMint solana.PublicKey) (RegistrarPDA, error)
}

type programLocator struct {
	programID solana.PublicKey
}

func NewLocator(programID solana.PublicKey) Locator {
	return programLocator{programID: programID}
}

func (l programLocator) RegistrarPDA(realm, governingTokenMint solana.PublicKey) (RegistrarPDA, error) {
	return GetRegistrarPDA(realm, governingTokenMint, l.programID)
}

type locatorKey struct {
	realm solana.PublicKey
	mint  solana.PublicKey
}

// CachedLocator memoizes derivations, which cost up to 255 sha256 rounds
// and curve checks each. It is safe for concurrent use.
type CachedLocator struct {
	programID solana.PublicKey
	recents   *lru.ARCCache // locatorKey -> RegistrarPDA
}

func NewCachedLocator(programID solana.PublicKey, size int) (*CachedLocator, error) {
	if size <= 0 {
		size = defaultLocatorCacheSize
	}
	recents, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &CachedLocator{programID: programID, recents: recents}, nil
}

func (c *CachedLocator) RegistrarPDA(realm, governingTokenMint solana.PublicKey) (RegistrarPDA, error) {
	key := locatorKey{realm: realm, mint: governingTokenMint}
	if cached, ok := c.recents.Get(key); ok {
		return cached.(RegistrarPDA), nil
	}
	pda, err := GetRegistrarPDA(realm, governingTokenMint, c.programID)
	if err != nil {
		return RegistrarPDA{}, err
	}
	c.recents.Add(key, pda)
	return pda, nil
}

// Len reports the number of cached derivations.
func (c *CachedLocator) Len() int {
	return c.recents.Len()
}

func (c *CachedLocator) ProgramID() solana.PublicKey {
	return c.programID
}
