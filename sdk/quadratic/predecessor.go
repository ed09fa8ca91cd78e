// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quadratic

import (
	"github.com/gagliardetto/solana-go"
)

// Predecessor is either empty or the registrar of the voter-weight plugin
// that runs before this one in the realm's plugin chain. The zero value is
// NoPredecessor.
type Predecessor struct {
	address solana.PublicKey
	set     bool
}

var NoPredecessor = Predecessor{}

func PredecessorOf(address solana.PublicKey) Predecessor {
	return Predecessor{address: address, set: true}
}

// PredecessorFromPtr maps nil to NoPredecessor.
func PredecessorFromPtr(address *solana.PublicKey) Predecessor {
	if address == nil {
		return NoPredecessor
	}
	return PredecessorOf(*address)
}

func (p Predecessor) IsSet() bool {
	return p.set
}

// Address returns the predecessor address and whether one is set.
func (p Predecessor) Address() (solana.PublicKey, bool) {
	return p.address, p.set
}

// remainingAccounts is the only place that turns a predecessor into account
// metas; usePreviousPlugin is the only place that turns it into the flag.
func (p Predecessor) remainingAccounts() solana.AccountMetaSlice {
	if !p.set {
		return nil
	}
	return solana.AccountMetaSlice{solana.NewAccountMeta(p.address, false, false)}
}

func (p Predecessor) usePreviousPlugin() bool {
	return p.set
}

func (p Predecessor) String() string {
	if !p.set {
		return "none"
	}
	return p.address.String()
}
