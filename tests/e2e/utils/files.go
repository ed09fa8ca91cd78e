// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Deadghoost/governance-ui/pkg/constants"
)

// SetupHome points HOME at a fresh directory so the CLI keeps its config
// and logs out of the real home.
func SetupHome() (string, error) {
	dir, err := os.MkdirTemp("", "quadratic-e2e*")
	if err != nil {
		return "", err
	}
	if err := os.Setenv("HOME", dir); err != nil {
		return "", err
	}
	return dir, nil
}

// ConfigFilePath is the config file the CLI writes under HOME.
func ConfigFilePath() string {
	return filepath.Join(os.Getenv("HOME"), constants.BaseDirName,
		constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

// DeleteConfig removes the persisted CLI config, if any.
func DeleteConfig() error {
	err := os.Remove(ConfigFilePath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// WriteRealmsFile writes a realms file with AlphaRealm (complete) and
// BetaRealm (no authority) into dir.
func WriteRealmsFile(dir string) (string, error) {
	content := fmt.Sprintf(`realms:
  - name: %s
    address: %s
    communityMint: %s
    authority: %s
  - name: %s
    address: %s
    communityMint: %s
`, AlphaRealm, RealmKey, MintKey, AuthorityKey, BetaRealm, BetaRealmKey, BetaMintKey)
	path := filepath.Join(dir, RealmsFileName)
	if err := os.WriteFile(path, []byte(content), constants.WriteReadReadPerms); err != nil {
		return "", err
	}
	return path, nil
}
