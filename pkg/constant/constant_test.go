// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The fixed target lists are a compatibility contract with the
// Configuration Manager client. These tests pin them down so that an
// accidental edit shows up as a test failure, not as a half-removed client.

func TestServices(t *testing.T) {
	assert.Equal(t, []string{"ccmsetup", "CcmExec", "smstsmgr", "CmRcService"}, Services)
}

func TestRegistryKeys(t *testing.T) {
	assert.Equal(t, []string{
		`HKLM\SYSTEM\CurrentControlSet\Services\CCMSetup`,
		`HKLM\SYSTEM\CurrentControlSet\Services\CcmExec`,
		`HKLM\SYSTEM\CurrentControlSet\Services\smstsmgr`,
		`HKLM\SYSTEM\CurrentControlSet\Services\CmRcService`,
	}, ServiceRegistryKeys)

	assert.Equal(t, []string{
		`HKLM\SOFTWARE\Microsoft\CCM`,
		`HKLM\SOFTWARE\Microsoft\CCMSetup`,
		`HKLM\SOFTWARE\Microsoft\SMS`,
	}, SoftwareRegistryKeys)

	assert.Equal(t, `HKLM\SOFTWARE\Microsoft\DeviceManageabilityCSP`, MDMRegistryKey)
}

func TestWMINamespaces(t *testing.T) {
	assert.Equal(t, [][2]string{
		{`root`, `ccm`},
		{`root\cimv2`, `sms`},
	}, WMINamespaces)
}

func TestGetPaths(t *testing.T) {
	tests := []struct {
		name       string
		systemRoot string
		getenv     func(string) string
		expected   string
	}{
		{
			name:       "explicit system root wins",
			systemRoot: `D:\Windows`,
			getenv:     func(string) string { return `C:\Windows` },
			expected:   `D:\Windows`,
		},
		{
			name:       "environment fallback",
			systemRoot: "",
			getenv:     func(k string) string { return map[string]string{"SystemRoot": `E:\WinNT`}[k] },
			expected:   `E:\WinNT`,
		},
		{
			name:       "default fallback",
			systemRoot: "",
			getenv:     func(string) string { return "" },
			expected:   `C:\Windows`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := GetPaths(tt.systemRoot, tt.getenv)
			assert.Equal(t, tt.expected+`\CCM`, paths.InstallDir)
			assert.Equal(t, tt.expected+`\ccmsetup`, paths.SetupDir)
			assert.Equal(t, tt.expected+`\ccmcache`, paths.CacheDir)
			assert.Equal(t, tt.expected+`\SMSCFG.ini`, paths.LegacyConfigFile)
			assert.Equal(t, tt.expected+`\SMS*.mif`, paths.InventoryGlob)
			assert.Equal(t, tt.expected+`\ccmsetup\ccmsetup.exe`, paths.VendorUninstaller)
		})
	}
}
