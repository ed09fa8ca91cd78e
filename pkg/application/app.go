// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	luxlog "github.com/luxfi/log"

	"github.com/Deadghoost/governance-ui/pkg/config"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/prompts"
	"github.com/Deadghoost/governance-ui/sdk/network"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
	"github.com/Deadghoost/governance-ui/sdk/realm"
)

// RPCClient is the part of the Solana JSON-RPC API the CLI uses.
// *rpc.Client satisfies it.
type RPCClient interface {
	quadratic.AccountFetcher
	GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error)
}

// RPCFactory opens a client for an endpoint. Tests replace it.
type RPCFactory func(endpoint string) RPCClient

func defaultRPCFactory(endpoint string) RPCClient {
	return rpc.New(endpoint)
}

type App struct {
	Log    luxlog.Logger
	Conf   *config.Config
	Prompt prompts.Prompter
	NewRPC RPCFactory

	baseDir string
	locator *quadratic.CachedLocator
}

func New() *App {
	return &App{NewRPC: defaultRPCFactory}
}

func (app *App) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	if app.NewRPC == nil {
		app.NewRPC = defaultRPCFactory
	}
}

func (app *App) GetBaseDir() string {
	return app.baseDir
}

func (app *App) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetConfigPath is where "config set" writes when no config file was loaded.
func (app *App) GetConfigPath() string {
	if path := app.Conf.GetConfigPath(); path != "" {
		return path
	}
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

// Network resolves the cluster from rpc-url, falling back to the cluster
// name (mainnet-beta when unset).
func (app *App) Network() (network.Network, error) {
	if endpoint := app.Conf.GetConfigStringValue(constants.ConfigRPCURL); endpoint != "" {
		return network.NewNetwork(network.Custom, endpoint), nil
	}
	return network.NetworkFromName(app.Conf.GetConfigStringValue(constants.ConfigCluster))
}

func (app *App) RPC() (RPCClient, error) {
	n, err := app.Network()
	if err != nil {
		return nil, err
	}
	app.Log.Debug("using rpc endpoint", "network", n.String())
	return app.NewRPC(n.Endpoint), nil
}

// ProgramID is the configured plugin program, or quadratic.DefaultProgramID.
func (app *App) ProgramID() (solana.PublicKey, error) {
	return app.publicKeyOrDefault(constants.ConfigProgramID, quadratic.DefaultProgramID)
}

// GovernanceProgramID is the configured governance program, or
// realm.DefaultGovernanceProgramID.
func (app *App) GovernanceProgramID() (solana.PublicKey, error) {
	return app.publicKeyOrDefault(constants.ConfigGovernanceProgramID, realm.DefaultGovernanceProgramID)
}

func (app *App) publicKeyOrDefault(key string, fallback solana.PublicKey) (solana.PublicKey, error) {
	value := app.Conf.GetConfigStringValue(key)
	if value == "" {
		return fallback, nil
	}
	pk, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return pk, nil
}

// QuadraticClient returns a registrar client for the configured program.
// With withRPC false the client can derive and build but not read.
func (app *App) QuadraticClient(withRPC bool) (*quadratic.Client, error) {
	programID, err := app.ProgramID()
	if err != nil {
		return nil, err
	}
	if app.locator == nil || !app.locator.ProgramID().Equals(programID) {
		if app.locator, err = quadratic.NewCachedLocator(programID, 0); err != nil {
			return nil, err
		}
	}
	var fetcher quadratic.AccountFetcher
	if withRPC {
		client, err := app.RPC()
		if err != nil {
			return nil, err
		}
		fetcher = client
	}
	return quadratic.NewClient(
		programID,
		fetcher,
		quadratic.WithLocator(app.locator),
		quadratic.WithLogger(app.Log),
		quadratic.WithFetchConcurrency(constants.FetchConcurrency),
	), nil
}
