// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"github.com/winadmins/ccmclean/pkg/teardown"
)

// keyStore is the slice of the registry this step needs. Implemented by
// winreg.Store on Windows and by fakes in tests.
type keyStore interface {
	Exists(path string) (bool, error)
	// Delete removes the key subtree recursively.
	Delete(path string) error
}

// registryKeys deletes a fixed list of key subtrees. It is instantiated
// three times: service registration keys, client software keys, and the
// MDM authority key, which gets its own step so its reset shows up
// separately in the log.
type registryKeys struct {
	name  string
	store keyStore
	keys  []string
}

// Name returns the name of the step
func (s *registryKeys) Name() string {
	return s.name
}

func (s *registryKeys) Run(r *teardown.Runner) ([]teardown.Result, error) {
	targets := make([]teardown.Target, 0, len(s.keys))
	for _, key := range s.keys {
		targets = append(targets, &registryTarget{path: key, store: s.store})
	}
	return r.ProcessAll(targets), nil
}

type registryTarget struct {
	path  string
	store keyStore
}

func (t *registryTarget) Kind() string   { return "registry key" }
func (t *registryTarget) String() string { return t.path }

func (t *registryTarget) Exists() (bool, error) {
	return t.store.Exists(t.path)
}

func (t *registryTarget) Remove() error {
	return t.store.Delete(t.path)
}
