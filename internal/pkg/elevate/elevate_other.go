//go:build !windows

// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package elevate

// IsAdministrator always reports false on non-Windows platforms; the tool
// refuses to run there anyway.
func IsAdministrator() bool {
	return false
}
