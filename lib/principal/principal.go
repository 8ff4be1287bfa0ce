// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
	"strings"
)

var (
	// ErrUnknownUser is returned (wrapped) when a name does not resolve
	// to an account in the user database.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidUsername is returned (wrapped) when a name cannot be
	// used as a single path component.
	ErrInvalidUsername = errors.New("invalid username")
)

// Account is a resolved system account.
type Account struct {
	Name string
	UID  int
	GID  int
}

// Directory resolves accounts from the host's user database.
type Directory interface {
	// Lookup resolves name. Returns an error wrapping ErrUnknownUser
	// when the account does not exist.
	Lookup(name string) (Account, error)

	// Current returns the account the process is running as.
	Current() (Account, error)
}

// SystemDirectory is the os/user backed [Directory].
type SystemDirectory struct{}

// Lookup implements [Directory].
func (SystemDirectory) Lookup(name string) (Account, error) {
	found, err := user.Lookup(name)
	if err != nil {
		var unknown user.UnknownUserError
		if errors.As(err, &unknown) {
			return Account{}, fmt.Errorf("%w %q", ErrUnknownUser, name)
		}
		return Account{}, fmt.Errorf("looking up user %q: %w", name, err)
	}
	return accountFromUser(found)
}

// Current implements [Directory].
func (SystemDirectory) Current() (Account, error) {
	found, err := user.Current()
	if err != nil {
		return Account{}, fmt.Errorf("resolving current user: %w", err)
	}
	return accountFromUser(found)
}

func accountFromUser(found *user.User) (Account, error) {
	uid, err := strconv.Atoi(found.Uid)
	if err != nil {
		return Account{}, fmt.Errorf("parse uid %q for %s: %w", found.Uid, found.Username, err)
	}
	gid, err := strconv.Atoi(found.Gid)
	if err != nil {
		return Account{}, fmt.Errorf("parse gid %q for %s: %w", found.Gid, found.Username, err)
	}
	return Account{Name: found.Username, UID: uid, GID: gid}, nil
}

// ValidateUsername checks that name can be used verbatim as one path
// component. It rejects empty names, names containing "/" or NUL, and
// names starting with "." (which also covers "." and "..").
//
// Account existence is a separate question answered by [Directory].
func ValidateUsername(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidUsername)
	case strings.ContainsAny(name, "/\x00"):
		return fmt.Errorf("%w %q: contains a path separator or NUL", ErrInvalidUsername, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w %q: starts with '.'", ErrInvalidUsername, name)
	}
	return nil
}
