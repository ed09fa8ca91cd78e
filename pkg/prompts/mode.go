// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

// Environment variable names for non-interactive mode.
const (
	// EnvNonInteractive forces non-interactive mode.
	// Set to "1", "true", "yes", or "on" to enable.
	EnvNonInteractive = "QUADRATIC_NON_INTERACTIVE"

	// EnvCI is a common CI environment variable.
	// When truthy, implies non-interactive.
	EnvCI = "CI"
)

var forcedNonInteractive atomic.Bool

// SetNonInteractive forces non-interactive mode regardless of TTY state,
// as the --non-interactive flag does.
func SetNonInteractive(v bool) {
	forcedNonInteractive.Store(v)
}

// isTruthyEnv checks if an environment variable is set to a truthy value.
// Accepts: 1, true, t, yes, y, on (case-insensitive)
func isTruthyEnv(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// stdinIsTTY returns true if stdin is a terminal (TTY).
func stdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsInteractive returns true if prompting is allowed.
//
// Interactive mode is enabled when ALL of:
//   - non-interactive mode was not forced
//   - QUADRATIC_NON_INTERACTIVE is not truthy
//   - CI is not truthy
//   - stdin is a TTY (not piped/redirected)
func IsInteractive() bool {
	if forcedNonInteractive.Load() {
		return false
	}
	if isTruthyEnv(EnvNonInteractive) {
		return false
	}
	// CI convention (GitHub Actions, GitLab CI, etc.)
	if isTruthyEnv(EnvCI) {
		return false
	}
	return stdinIsTTY()
}

// IsNonInteractive is the inverse of IsInteractive.
func IsNonInteractive() bool {
	return !IsInteractive()
}

// NewPrompterForMode returns the appropriate prompter based on mode.
//
// If non-interactive, returns NonInteractivePrompter that fails fast.
// If interactive (TTY), returns the standard realPrompter that can prompt.
//
// The flag value replaces any earlier setting, so a later command built in
// the same process without --non-interactive may prompt again.
func NewPrompterForMode(nonInteractiveFlag bool) Prompter {
	SetNonInteractive(nonInteractiveFlag)
	if IsNonInteractive() {
		return NewNonInteractivePrompter()
	}
	return NewPrompter()
}
