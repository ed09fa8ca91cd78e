// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrUnknownOutput    = errors.New("unknown output format, expected table, json or yaml")
	ErrNoRealm          = errors.New("\n\nNo realm given. To resolve this:\n- Pass --realm and --mint (and --authority for create/configure).\n- Or pass --realms-file with --name to load a realm descriptor.\n") //nolint:stylecheck
)
