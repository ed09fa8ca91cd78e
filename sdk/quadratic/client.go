// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package quadratic builds and reads the registrar of the quadratic
// voter-weight plugin for SPL-governance realms.
//
// The plugin program owns one registrar per realm and governing token mint.
// This package derives its address, assembles unsigned createRegistrar and
// configureRegistrar instructions, and decodes the account. It never signs
// or submits transactions.
package quadratic

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	luxlog "github.com/luxfi/log"
)

// DefaultProgramID is the quadratic voter-weight plugin deployed by the
// governance program library.
var DefaultProgramID = solana.MustPublicKeyFromBase58("quadCSapU8nTdLg73KHDnmdxKnJQsh7GUbu5tZfnRRr")

const defaultFetchConcurrency = 8

// AccountFetcher is the slice of the Solana RPC client the reader needs.
// *rpc.Client satisfies it.
type AccountFetcher interface {
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
}

// Client binds the registrar operations to one deployment of the plugin
// program.
type Client struct {
	programID   solana.PublicKey
	locator     Locator
	fetcher     AccountFetcher
	log         luxlog.Logger
	concurrency int64
}

type Option func(*Client)

// WithLocator replaces the default uncached locator, typically with a
// CachedLocator for the same program.
func WithLocator(l Locator) Option {
	return func(c *Client) {
		c.locator = l
	}
}

func WithLogger(log luxlog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithFetchConcurrency bounds the number of in-flight requests made by
// FetchRegistrars.
func WithFetchConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = int64(n)
		}
	}
}

// NewClient returns a client for programID. fetcher may be nil when only
// address derivation and instruction building are needed.
func NewClient(programID solana.PublicKey, fetcher AccountFetcher, opts ...Option) *Client {
	c := &Client{
		programID:   programID,
		locator:     NewLocator(programID),
		fetcher:     fetcher,
		log:         luxlog.NewNoOpLogger(),
		concurrency: defaultFetchConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ProgramID() solana.PublicKey {
	return c.programID
}

// RegistrarPDA derives the registrar of realm for governingTokenMint.
func (c *Client) RegistrarPDA(realm, governingTokenMint solana.PublicKey) (RegistrarPDA, error) {
	return c.locator.RegistrarPDA(realm, governingTokenMint)
}
