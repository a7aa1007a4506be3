//go:build windows

// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"github.com/winadmins/ccmclean/pkg/constant"
	"github.com/winadmins/ccmclean/pkg/teardown"
	"github.com/winadmins/ccmclean/pkg/winreg"
	"github.com/winadmins/ccmclean/pkg/winsvc"
	"github.com/winadmins/ccmclean/pkg/wmi"
)

// NewConfig assembles the removal stages in their fixed order. The prompt
// func is consulted before each destructive action in confirm mode.
func NewConfig(mode teardown.Mode, prompt func(action string) bool, paths constant.Paths) (*Config, error) {
	store := winreg.NewStore()

	steps := []Step{
		&uninstaller{
			path: paths.VendorUninstaller,
			arg:  constant.VendorUninstallArg,
			run:  execRunner{},
		},
		&services{
			mgr:   winsvc.NewManager(),
			names: constant.Services,
		},
		&processes{
			kill:   gopsutilKiller{},
			images: []string{constant.CcmExecImage, constant.CcmSetupImage},
		},
		&namespaces{
			client: wmi.NewClient(),
			pairs:  constant.WMINamespaces,
		},
		&registryKeys{
			name:  "remove service registry keys",
			store: store,
			keys:  constant.ServiceRegistryKeys,
		},
		&registryKeys{
			name:  "remove client software registry keys",
			store: store,
			keys:  constant.SoftwareRegistryKeys,
		},
		&registryKeys{
			name:  "reset MDM authority",
			store: store,
			keys:  []string{constant.MDMRegistryKey},
		},
		&files{
			paths: []string{
				paths.InstallDir,
				paths.SetupDir,
				paths.CacheDir,
				paths.LegacyConfigFile,
			},
			globs: []string{paths.InventoryGlob},
		},
	}

	return &Config{runner: teardown.NewRunner(mode, prompt), steps: steps}, nil
}
