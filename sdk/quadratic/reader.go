// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quadratic

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var (
	ErrNotFound  = errors.New("registrar account not found")
	ErrNoFetcher = errors.New("client has no account fetcher")
)

// FetchStatus classifies the outcome of reading a registrar account.
type FetchStatus uint8

const (
	Found FetchStatus = iota
	NotFound
	DecodeError
	TransportError
)

func (s FetchStatus) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case DecodeError:
		return "decode error"
	case TransportError:
		return "transport error"
	default:
		return fmt.Sprintf("FetchStatus(%d)", uint8(s))
	}
}

// FetchResult is the outcome of FetchRegistrar. Registrar is non-nil only
// when Status is Found; Err is non-nil for every other status.
type FetchResult struct {
	Address   solana.PublicKey
	Status    FetchStatus
	Registrar *Registrar
	Err       error
}

// OK reports whether the registrar was found and decoded.
func (r FetchResult) OK() bool {
	return r.Status == Found
}

// FetchRegistrar reads and decodes the registrar at address. It never
// returns an error directly; callers decide how to treat each status.
func (c *Client) FetchRegistrar(ctx context.Context, address solana.PublicKey) FetchResult {
	result := FetchResult{Address: address}
	if c.fetcher == nil {
		result.Status = TransportError
		result.Err = ErrNoFetcher
		return result
	}
	out, err := c.fetcher.GetAccountInfo(ctx, address)
	switch {
	case errors.Is(err, rpc.ErrNotFound):
		result.Status = NotFound
		result.Err = ErrNotFound
		return result
	case err != nil:
		result.Status = TransportError
		result.Err = fmt.Errorf("failed to fetch registrar %s: %w", address, err)
		c.log.Debug("registrar fetch failed", "registrar", address.String(), "error", err)
		return result
	case out == nil || out.Value == nil:
		result.Status = NotFound
		result.Err = ErrNotFound
		return result
	}
	if !out.Value.Owner.Equals(c.programID) {
		result.Status = DecodeError
		result.Err = fmt.Errorf("%w: owner is %s", ErrWrongOwner, out.Value.Owner)
		return result
	}
	var data []byte
	if out.Value.Data != nil {
		data = out.Value.Data.GetBinary()
	}
	registrar, err := DecodeRegistrar(data)
	if err != nil {
		result.Status = DecodeError
		result.Err = err
		c.log.Debug("registrar decode failed", "registrar", address.String(), "error", err)
		return result
	}
	result.Status = Found
	result.Registrar = registrar
	return result
}

// TryGetRegistrar returns the registrar at address, or nil when it is
// absent, undecodable, or could not be fetched. The three cases are
// indistinguishable; use FetchRegistrar to tell them apart.
func (c *Client) TryGetRegistrar(ctx context.Context, address solana.PublicKey) *Registrar {
	result := c.FetchRegistrar(ctx, address)
	if !result.OK() {
		return nil
	}
	return result.Registrar
}

// FetchRegistrars reads many registrars concurrently. Results are in the
// order of addresses. The only error returned is ctx's.
func (c *Client) FetchRegistrars(ctx context.Context, addresses []solana.PublicKey) ([]FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]FetchResult, len(addresses))
	sem := semaphore.NewWeighted(c.concurrency)
	errGroup, ctx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		errGroup.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			results[i] = c.FetchRegistrar(ctx, address)
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
