// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Deadghoost/governance-ui/cmd/configcmd"
	"github.com/Deadghoost/governance-ui/cmd/registrarcmd"
	"github.com/Deadghoost/governance-ui/pkg/application"
	"github.com/Deadghoost/governance-ui/pkg/config"
	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/pkg/prompts"
	"github.com/Deadghoost/governance-ui/pkg/ux"
)

var (
	logFactory luxlog.Factory

	logLevel       string
	Version        = "0.3.0"
	cfgFile        string
	nonInteractive bool
)

// NewRootCmd builds the command tree around app. Execute passes a fresh
// application; tests pass one with a stubbed RPC factory.
func NewRootCmd(app *application.App) *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "quadratic",
		Long: `Quadratic voter-weight registrar tooling for SPL-governance realms.

The quadratic plugin keeps one registrar account per realm and governing
token mint. It stores the coefficients (a, b, c) of the curve a·x² + b·x − c
the plugin applies to deposits, and whether a predecessor plugin runs first.

COMMAND OVERVIEW:

  registrar address    Derive the registrar address of a realm
  registrar create     Build the createRegistrar instruction
  registrar configure  Build the configureRegistrar instruction
  registrar describe   Read and decode existing registrars
  config               Persist rpc-url, cluster and program ids

Instructions are printed unsigned. Submit them with your wallet or pass
--blockhash to get an unsigned transaction ready for signing.

QUICK START:

  quadratic registrar address --realm <REALM> --mint <MINT>
  quadratic registrar create --realm <REALM> --mint <MINT> --authority <AUTH> --keypair ~/.config/solana/id.json
  quadratic registrar describe --realms-file realms.yaml --cluster devnet`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return createApp(cmd, app)
		},
		Version:      Version,
		SilenceUsage: true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	addPersistentFlags(rootCmd.PersistentFlags())

	// add sub commands
	rootCmd.AddCommand(registrarcmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

// addPersistentFlags registers the global flags. The config keys among them
// are bound to viper so they override env and the config file.
func addPersistentFlags(pf *pflag.FlagSet) {
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quadratic/cli.json)")
	pf.StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	pf.BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	pf.Bool("verbose", false, "Show verbose output (info level logs)")
	pf.Bool("debug", false, "Show debug output (debug level logs)")
	pf.Bool("quiet", false, "Show only errors (quiet mode)")
	pf.String(constants.ConfigRPCURL, "", "Solana JSON-RPC endpoint (overrides --cluster)")
	pf.String(constants.ConfigCluster, "mainnet-beta", "cluster: mainnet-beta, devnet, testnet or localnet")
	pf.String(constants.ConfigProgramID, "", "quadratic plugin program id (default is the deployed plugin)")
	pf.String(constants.ConfigGovernanceProgramID, "", "governance program owning the realm (default is spl-governance)")
	pf.String(constants.ConfigRealmsFile, "", "YAML file of named realm descriptors")
	pf.String(constants.ConfigKeypair, "", "solana-keygen keypair whose public key pays for create")
	for _, key := range constants.ConfigKeys {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
}

func createApp(cmd *cobra.Command, app *application.App) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	app.Setup(baseDir, luxlog.NewNoOpLogger(), config.New(), prompts.NewPrompterForMode(nonInteractive))
	log, err := setupLogging(app.GetLogDir(), cmd)
	if err != nil {
		return err
	}
	app.Log = log

	// Adjust log level based on flags BEFORE any logging happens
	if cmd.Flags().Changed("debug") {
		logFactory.SetLogLevel(constants.LogName, luxlog.Level(level.Debug))
		logFactory.SetDisplayLevel(constants.LogName, luxlog.Level(level.Debug))
	} else if cmd.Flags().Changed("verbose") {
		logFactory.SetLogLevel(constants.LogName, luxlog.Level(level.Info))
		logFactory.SetDisplayLevel(constants.LogName, luxlog.Level(level.Info))
	} else if cmd.Flags().Changed("quiet") {
		logFactory.SetLogLevel(constants.LogName, luxlog.Level(level.Error))
		logFactory.SetDisplayLevel(constants.LogName, luxlog.Level(level.Error))
	} else if logLevel != "" {
		level, err := luxlog.ToLevel(logLevel)
		if err == nil {
			logFactory.SetLogLevel(constants.LogName, level)
			logFactory.SetDisplayLevel(constants.LogName, level)
		}
	}

	initConfig(app)
	return nil
}

func setupEnv() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get home directory %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(home, constants.BaseDirName)

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(logDir string, cmd *cobra.Command) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel, _ = luxlog.ToLevel("INFO")

	// Set default display level to WARN (quiet by default)
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = logDir
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/Deadghoost/governance-ui/pkg/ux")

	if logFactory != nil {
		logFactory.Close()
	}
	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(constants.LogName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// Store factory globally so we can adjust levels later
	logFactory = factory
	// User output goes to the command's writer, logs go to the log directory
	ux.SetUserLog(log, cmd.OutOrStdout())
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(app *application.App) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(app.GetBaseDir())
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName) // cli.json
	}

	_ = viper.BindEnv(constants.ConfigRPCURL, constants.EnvRPCURL)
	_ = viper.BindEnv(constants.ConfigCluster, constants.EnvCluster)
	_ = viper.BindEnv(constants.ConfigProgramID, constants.EnvProgramID)
	_ = viper.BindEnv(constants.ConfigGovernanceProgramID, constants.EnvGovernanceProgramID)
	_ = viper.BindEnv(constants.ConfigRealmsFile, constants.EnvRealmsFile)
	_ = viper.BindEnv(constants.ConfigKeypair, constants.EnvKeypair)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	}
	// No config file is normal - most users don't have one, so we silently continue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd := NewRootCmd(application.New())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
