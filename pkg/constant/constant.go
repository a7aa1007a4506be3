// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package constant

// The names and paths in this package are dictated by the Configuration
// Manager client and must not be changed; removal is only complete when
// every one of them is gone.

const (
	// VendorUninstallArg is the silent uninstall switch understood by ccmsetup.exe.
	VendorUninstallArg = "/uninstall"

	// CcmExecImage is the image name of the main client process.
	CcmExecImage = "CcmExec.exe"
	// CcmSetupImage is the image name of the client installer process.
	CcmSetupImage = "ccmsetup.exe"

	// MDMRegistryKey holds the device-manageability (MDM) authority flag.
	// Deleting the subtree resets the authority.
	MDMRegistryKey = `HKLM\SOFTWARE\Microsoft\DeviceManageabilityCSP`

	// DefaultSystemRoot is used when the SystemRoot environment variable is
	// not set, which should not happen on any sane Windows installation.
	DefaultSystemRoot = `C:\Windows`
)

// Services lists the client service registrations in removal order. The
// installer service goes first so that it cannot respawn CcmExec while the
// rest of the teardown runs.
var Services = []string{
	"ccmsetup",
	"CcmExec",
	"smstsmgr",
	"CmRcService",
}

// ServiceRegistryKeys are the per-service registration keys. Deleting a
// service through the SCM removes these as well; they are torn down again
// as a safety net for hosts where a previous removal went sideways.
var ServiceRegistryKeys = []string{
	`HKLM\SYSTEM\CurrentControlSet\Services\CCMSetup`,
	`HKLM\SYSTEM\CurrentControlSet\Services\CcmExec`,
	`HKLM\SYSTEM\CurrentControlSet\Services\smstsmgr`,
	`HKLM\SYSTEM\CurrentControlSet\Services\CmRcService`,
}

// SoftwareRegistryKeys are the client's product configuration subtrees.
var SoftwareRegistryKeys = []string{
	`HKLM\SOFTWARE\Microsoft\CCM`,
	`HKLM\SOFTWARE\Microsoft\CCMSetup`,
	`HKLM\SOFTWARE\Microsoft\SMS`,
}

// WMINamespaces are the client's CIM repository namespaces as
// (parent path, leaf name) pairs.
var WMINamespaces = [][2]string{
	{`root`, `ccm`},
	{`root\cimv2`, `sms`},
}

// Paths holds the filesystem locations of the client, all of which live
// under the Windows system root.
type Paths struct {
	// InstallDir is the client installation directory.
	InstallDir string
	// SetupDir is the installer's own directory, including ccmsetup.exe.
	SetupDir string
	// CacheDir is the content download cache.
	CacheDir string
	// LegacyConfigFile is the pre-client-install identity file.
	LegacyConfigFile string
	// InventoryGlob matches leftover legacy inventory report files.
	InventoryGlob string
	// VendorUninstaller is the expected location of ccmsetup.exe.
	VendorUninstaller string
}

// GetPaths resolves the client paths under the given system root. An empty
// systemRoot falls back to the SystemRoot environment variable via the
// provided getenv, then to DefaultSystemRoot.
func GetPaths(systemRoot string, getenv func(string) string) Paths {
	if systemRoot == "" && getenv != nil {
		systemRoot = getenv("SystemRoot")
	}
	if systemRoot == "" {
		systemRoot = DefaultSystemRoot
	}
	return Paths{
		InstallDir:        systemRoot + `\CCM`,
		SetupDir:          systemRoot + `\ccmsetup`,
		CacheDir:          systemRoot + `\ccmcache`,
		LegacyConfigFile:  systemRoot + `\SMSCFG.ini`,
		InventoryGlob:     systemRoot + `\SMS*.mif`,
		VendorUninstaller: systemRoot + `\ccmsetup\ccmsetup.exe`,
	}
}
