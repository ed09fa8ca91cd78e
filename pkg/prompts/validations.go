// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"os"

	"github.com/gagliardetto/solana-go"

	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

func validatePublicKey(input string) error {
	if input == "" {
		return errors.New("public key cannot be empty")
	}
	_, err := solana.PublicKeyFromBase58(input)
	return err
}

func validateCoefficients(input string) error {
	_, err := quadratic.ParseCoefficients(input)
	return err
}

func validateExistingFilepath(input string) error {
	if fileInfo, err := os.Stat(input); err == nil && !fileInfo.IsDir() {
		return nil
	}
	return errors.New("file doesn't exist")
}
