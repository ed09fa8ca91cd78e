// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

// FakeRPC stands in for a cluster. It serves stored accounts, a fixed rent
// quote, and remembers which endpoints the CLI opened.
type FakeRPC struct {
	mu        sync.Mutex
	accounts  map[solana.PublicKey]*rpc.Account
	endpoints []string
	Rent      uint64
}

func NewFakeRPC() *FakeRPC {
	return &FakeRPC{accounts: map[solana.PublicKey]*rpc.Account{}}
}

// Reset forgets stored accounts and opened endpoints.
func (f *FakeRPC) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts = map[solana.PublicKey]*rpc.Account{}
	f.endpoints = nil
}

func (f *FakeRPC) Open(endpoint string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endpoints = append(f.endpoints, endpoint)
}

func (f *FakeRPC) Endpoints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.endpoints...)
}

// StoreRegistrar places an encoded registrar owned by programID at address.
func (f *FakeRPC) StoreRegistrar(address, programID solana.PublicKey, r quadratic.Registrar) error {
	data, err := quadratic.EncodeRegistrar(r)
	if err != nil {
		return err
	}
	f.StoreAccount(address, programID, data)
	return nil
}

func (f *FakeRPC) StoreAccount(address, owner solana.PublicKey, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[address] = &rpc.Account{Owner: owner, Data: rpc.DataBytesOrJSONFromBytes(data)}
}

func (f *FakeRPC) GetAccountInfo(_ context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: a}, nil
}

func (f *FakeRPC) GetMinimumBalanceForRentExemption(context.Context, uint64, rpc.CommitmentType) (uint64, error) {
	return f.Rent, nil
}
