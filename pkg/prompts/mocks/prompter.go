// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Hand-written testify mock of prompts.Prompter.

package mocks

import (
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/mock"

	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

// Prompter is a mock implementation of prompts.Prompter
type Prompter struct {
	mock.Mock
}

func (m *Prompter) CapturePublicKey(promptStr string) (solana.PublicKey, error) {
	args := m.Called(promptStr)
	return args.Get(0).(solana.PublicKey), args.Error(1)
}

func (m *Prompter) CaptureCoefficients(promptStr string) (quadratic.Coefficients, error) {
	args := m.Called(promptStr)
	return args.Get(0).(quadratic.Coefficients), args.Error(1)
}

func (m *Prompter) CaptureExistingFilepath(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureYesNo(promptStr string) (bool, error) {
	args := m.Called(promptStr)
	return args.Bool(0), args.Error(1)
}

func (m *Prompter) CaptureList(promptStr string, options []string) (string, error) {
	args := m.Called(promptStr, options)
	return args.String(0), args.Error(1)
}
