//go:build windows

// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package winreg

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Store reads and deletes keys in the local machine's registry.
type Store struct{}

// NewStore returns a registry store for the local machine.
func NewStore() *Store { return &Store{} }

// Exists reports whether the key addressed by the full path is present.
func (*Store) Exists(path string) (bool, error) {
	_, subkey, err := ParsePath(path)
	if err != nil {
		return false, err
	}
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, subkey, registry.QUERY_VALUE|registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open registry key %s: %w", path, err)
	}
	k.Close()
	return true, nil
}

// Delete removes the key subtree addressed by the full path. The registry
// API only deletes empty keys, so the subtree is walked bottom-up.
func (*Store) Delete(path string) error {
	_, subkey, err := ParsePath(path)
	if err != nil {
		return err
	}
	return deleteTree(subkey)
}

func deleteTree(subkey string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, subkey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open registry key %s: %w", subkey, err)
	}

	names, err := k.ReadSubKeyNames(-1)
	k.Close()
	if err != nil {
		return fmt.Errorf("failed to enumerate subkeys of %s: %w", subkey, err)
	}

	for _, name := range names {
		if err := deleteTree(subkey + `\` + name); err != nil {
			return err
		}
	}

	if err := registry.DeleteKey(registry.LOCAL_MACHINE, subkey); err != nil {
		return fmt.Errorf("failed to delete registry key %s: %w", subkey, err)
	}
	return nil
}
