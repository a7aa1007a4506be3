//go:build windows

// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package elevate

import "golang.org/x/sys/windows"

// IsAdministrator reports whether the current process token is elevated,
// i.e. whether the process runs with administrative rights.
func IsAdministrator() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
