// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	debug      bool
	dryRun     bool
	confirm    bool
	systemRoot string
)

// cleanFlagSet holds the execution-mode switches of the removal run.
func cleanFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("clean", pflag.ContinueOnError)
	flags.BoolVar(&dryRun, "dry-run", false, "Report planned removals without changing anything")
	flags.BoolVar(&confirm, "confirm", false, "Prompt before each destructive action")
	flags.StringVar(&systemRoot, "system-root", "", "Windows system root (default: %SystemRoot%)")
	return flags
}

// NewRootCmd builds the ccmclean command tree. Running the bare command
// performs the removal; there is deliberately no "partial" mode beyond
// dry-run and confirm, since a half-removed client is the situation this
// tool exists to fix.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ccmclean",
		Short: "Forcibly remove the Configuration Manager (SCCM) client from this machine",
		Long: `ccmclean removes the Configuration Manager client when the vendor
uninstaller alone cannot: it attempts the vendor uninstall, then tears down
the client's services, leftover processes, WMI namespaces, registry keys
and files. Safe to re-run; already-removed targets are reported and
skipped. Must be run from an elevated prompt.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("debug") {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return clean(cmd)
		},
	}
	cmd.SilenceUsage = true

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&debug, "debug", "d", false, "Debug logging (default: false)")

	flags := cleanFlagSet()
	cmd.Flags().AddFlagSet(flags)

	viper.SetEnvPrefix("CCMCLEAN")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("debug", pf.Lookup("debug"))
	_ = viper.BindPFlag("system-root", flags.Lookup("system-root"))

	cmd.AddCommand(versionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
