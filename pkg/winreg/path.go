// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

// Package winreg checks and deletes registry key subtrees addressed by
// their full HKLM paths.
package winreg

import (
	"fmt"
	"strings"
)

// ParsePath splits a full registry path such as
// HKLM\SOFTWARE\Microsoft\CCM into its hive token and subkey. Only the
// local-machine hive is supported; everything this tool touches lives
// there.
func ParsePath(path string) (hive, subkey string, err error) {
	hive, subkey, found := strings.Cut(path, `\`)
	if !found || subkey == "" {
		return "", "", fmt.Errorf("registry path %q has no subkey", path)
	}
	switch strings.ToUpper(hive) {
	case "HKLM", "HKEY_LOCAL_MACHINE":
		return "HKLM", subkey, nil
	default:
		return "", "", fmt.Errorf("unsupported registry hive %q in %q", hive, path)
	}
}
