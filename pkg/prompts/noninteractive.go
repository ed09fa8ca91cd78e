// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

// ErrNonInteractive is returned when a prompt is attempted in non-interactive mode.
// Commands should catch this error and provide actionable guidance.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// NonInteractivePrompter implements Prompter but fails fast on any prompt attempt.
// Use this in CI/script environments to detect missing flags early.
type NonInteractivePrompter struct {
	// FailMessage provides context about what flag/env var to set.
	// If empty, a default message is used.
	FailMessage string
}

// NewNonInteractivePrompter creates a prompter that fails fast on any interaction.
func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

// NewNonInteractivePrompterWithMessage creates a prompter with a custom fail message.
func NewNonInteractivePrompterWithMessage(msg string) *NonInteractivePrompter {
	return &NonInteractivePrompter{FailMessage: msg}
}

func (p *NonInteractivePrompter) fail(operation string) error {
	msg := p.FailMessage
	if msg == "" {
		msg = "use flags to provide required values, or unset " + EnvNonInteractive
	}
	return fmt.Errorf("%w: %s - %s", ErrNonInteractive, operation, msg)
}

func (p *NonInteractivePrompter) CapturePublicKey(promptStr string) (solana.PublicKey, error) {
	return solana.PublicKey{}, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureCoefficients(promptStr string) (quadratic.Coefficients, error) {
	return quadratic.Coefficients{}, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureExistingFilepath(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureYesNo(promptStr string) (bool, error) {
	return false, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureList(promptStr string, _ []string) (string, error) {
	return "", p.fail(promptStr)
}
