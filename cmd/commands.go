// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// RegistrarCmd is the registrar command name
	RegistrarCmd = "registrar"

	// ConfigCmd is the config command name
	ConfigCmd = "config"
)
