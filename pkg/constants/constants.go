// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	WriteReadReadPerms = 0o644

	BaseDirName = ".quadratic"
	LogDir      = "logs"
	LogName     = "quadratic"

	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "json"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	RequestTimeout = 30 * time.Second

	// FetchConcurrency bounds parallel registrar reads in describe.
	FetchConcurrency = 8

	// config keys, also accepted as flags
	ConfigRPCURL              = "rpc-url"
	ConfigCluster             = "cluster"
	ConfigProgramID           = "program-id"
	ConfigGovernanceProgramID = "governance-program-id"
	ConfigRealmsFile          = "realms-file"
	ConfigKeypair             = "keypair"

	// environment overrides for the config keys above
	EnvRPCURL              = "QUADRATIC_RPC_URL"
	EnvCluster             = "QUADRATIC_CLUSTER"
	EnvProgramID           = "QUADRATIC_PROGRAM_ID"
	EnvGovernanceProgramID = "QUADRATIC_GOVERNANCE_PROGRAM_ID"
	EnvRealmsFile          = "QUADRATIC_REALMS_FILE"
	EnvKeypair             = "QUADRATIC_KEYPAIR"

	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// ConfigKeys lists the keys accepted by "config get" and "config set".
var ConfigKeys = []string{
	ConfigRPCURL,
	ConfigCluster,
	ConfigProgramID,
	ConfigGovernanceProgramID,
	ConfigRealmsFile,
	ConfigKeypair,
}
