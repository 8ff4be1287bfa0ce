// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"fmt"
	"os"
)

// Owner changes file ownership. Implementations other than
// [SystemOwner] exist so that unprivileged tests can record the calls.
type Owner interface {
	// SetOwner makes uid the owner of path. The group is unchanged.
	SetOwner(path string, uid int) error
}

// SystemOwner is the chown(2) backed [Owner]. It needs CAP_CHOWN
// unless uid already owns path.
type SystemOwner struct{}

// SetOwner implements [Owner]. The group is passed as -1 so chown
// leaves it as is.
func (SystemOwner) SetOwner(path string, uid int) error {
	if err := os.Chown(path, uid, -1); err != nil {
		return fmt.Errorf("chown %s to uid %d: %w", path, uid, err)
	}
	return nil
}
