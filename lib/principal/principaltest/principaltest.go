// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package principaltest provides in-memory stand-ins for the
// principal interfaces.
package principaltest

import (
	"fmt"
	"sync"

	"github.com/droneplay/droneplay/lib/principal"
)

// Directory is a fixed account table. CurrentName selects which
// account Current returns.
type Directory struct {
	Accounts    map[string]principal.Account
	CurrentName string
}

// NewDirectory builds a Directory from names, assigning UIDs and GIDs
// from 1000 upwards in argument order. The first name becomes the
// current user.
func NewDirectory(names ...string) *Directory {
	directory := &Directory{Accounts: make(map[string]principal.Account, len(names))}
	for i, name := range names {
		directory.Accounts[name] = principal.Account{Name: name, UID: 1000 + i, GID: 1000 + i}
	}
	if len(names) > 0 {
		directory.CurrentName = names[0]
	}
	return directory
}

// Lookup implements principal.Directory.
func (d *Directory) Lookup(name string) (principal.Account, error) {
	account, ok := d.Accounts[name]
	if !ok {
		return principal.Account{}, fmt.Errorf("%w %q", principal.ErrUnknownUser, name)
	}
	return account, nil
}

// Current implements principal.Directory.
func (d *Directory) Current() (principal.Account, error) {
	if d.CurrentName == "" {
		return principal.Account{}, fmt.Errorf("resolving current user: no current user configured")
	}
	return d.Lookup(d.CurrentName)
}

// Chown is one recorded SetOwner call.
type Chown struct {
	Path string
	UID  int
}

// Owner records SetOwner calls instead of performing them. A non-nil
// Err is returned from every call (after recording it).
type Owner struct {
	mu    sync.Mutex
	calls []Chown
	Err   error
}

// SetOwner implements principal.Owner.
func (o *Owner) SetOwner(path string, uid int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, Chown{Path: path, UID: uid})
	return o.Err
}

// Calls returns a copy of the recorded calls.
func (o *Owner) Calls() []Chown {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Chown(nil), o.calls...)
}
