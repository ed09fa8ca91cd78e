// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// DefaultKeypairPath is where solana-keygen writes the default keypair.
const DefaultKeypairPath = "~/.config/solana/id.json"

var ErrNoKeypair = errors.New("no keypair file")

// Keychain exposes the public half of a local keypair. The private key
// stays inside; registrar instructions are never signed here.
type Keychain struct {
	path    string
	account solana.PublicKey
}

// NewKeychain reads a solana-keygen JSON keypair. A leading "~/" in keyPath
// is expanded to the user's home directory.
func NewKeychain(keyPath string) (*Keychain, error) {
	path, err := expandHome(keyPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoKeypair, path)
		}
		return nil, err
	}
	privateKey, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load keypair %s: %w", path, err)
	}
	return &Keychain{
		path:    path,
		account: privateKey.PublicKey(),
	}, nil
}

func (k *Keychain) Address() solana.PublicKey {
	return k.account
}

func (k *Keychain) Path() string {
	return k.path
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
