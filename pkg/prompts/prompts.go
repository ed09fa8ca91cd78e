// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"github.com/gagliardetto/solana-go"
	"github.com/manifoldco/promptui"

	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

const (
	Yes = "Yes"
	No  = "No"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

type Prompter interface {
	CapturePublicKey(promptStr string) (solana.PublicKey, error)
	CaptureCoefficients(promptStr string) (quadratic.Coefficients, error)
	CaptureExistingFilepath(promptStr string) (string, error)
	CaptureYesNo(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
}

type realPrompter struct{}

// NewPrompter returns a new instance of the prompter
func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CapturePublicKey(promptStr string) (solana.PublicKey, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validatePublicKey,
	}

	keyStr, err := promptUIRunner(prompt)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBase58(keyStr)
}

func (*realPrompter) CaptureCoefficients(promptStr string) (quadratic.Coefficients, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Default:  "1,0,0",
		Validate: validateCoefficients,
	}

	str, err := promptUIRunner(prompt)
	if err != nil {
		return quadratic.Coefficients{}, err
	}
	return quadratic.ParseCoefficients(str)
}

func (*realPrompter) CaptureExistingFilepath(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validateExistingFilepath,
	}

	pathStr, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}

	return pathStr, nil
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: []string{Yes, No},
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}
