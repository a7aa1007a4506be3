//go:build !windows

// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"

	"github.com/winadmins/ccmclean/pkg/constant"
	"github.com/winadmins/ccmclean/pkg/teardown"
)

// NewConfig is a stub: the Configuration Manager client only exists on
// Windows.
func NewConfig(teardown.Mode, func(string) bool, constant.Paths) (*Config, error) {
	return nil, errors.New("the Configuration Manager client can only be removed on Windows")
}
