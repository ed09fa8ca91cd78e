// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"
)

type NetworkKind int64

const (
	Undefined NetworkKind = iota
	Mainnet
	Devnet
	Testnet
	Localnet
	Custom
)

func (k NetworkKind) String() string {
	switch k {
	case Mainnet:
		return "mainnet-beta"
	case Devnet:
		return "devnet"
	case Testnet:
		return "testnet"
	case Localnet:
		return "localnet"
	case Custom:
		return "custom"
	}
	return "undefined"
}

type Network struct {
	Kind     NetworkKind
	Endpoint string
}

var UndefinedNetwork = Network{}

// NetworkFromName maps a cluster name (as accepted by solana config) to a
// preset. An http(s) URL yields a Custom network for that endpoint.
func NetworkFromName(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mainnet", "mainnet-beta", "m":
		return MainnetNetwork(), nil
	case "devnet", "d":
		return DevnetNetwork(), nil
	case "testnet", "t":
		return TestnetNetwork(), nil
	case "localnet", "localhost", "l":
		return LocalnetNetwork(), nil
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return NewNetwork(Custom, name), nil
	}
	return UndefinedNetwork, fmt.Errorf("unknown cluster %q", name)
}

func NewNetwork(kind NetworkKind, endpoint string) Network {
	return Network{
		Kind:     kind,
		Endpoint: endpoint,
	}
}

func MainnetNetwork() Network {
	return NewNetwork(Mainnet, rpc.MainNetBeta_RPC)
}

func DevnetNetwork() Network {
	return NewNetwork(Devnet, rpc.DevNet_RPC)
}

func TestnetNetwork() Network {
	return NewNetwork(Testnet, rpc.TestNet_RPC)
}

func LocalnetNetwork() Network {
	return NewNetwork(Localnet, rpc.LocalNet_RPC)
}

func (n Network) String() string {
	return fmt.Sprintf("%s (%s)", n.Kind, n.Endpoint)
}
