// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/winadmins/ccmclean/internal/pkg/elevate"
	"github.com/winadmins/ccmclean/pkg/cleanup"
	"github.com/winadmins/ccmclean/pkg/constant"
	"github.com/winadmins/ccmclean/pkg/teardown"
)

func clean(cmd *cobra.Command) error {
	// The one top-level catch: a wholly unanticipated failure abandons the
	// remaining sequence but, like every other teardown failure, does not
	// turn into a non-zero exit. The next run reconciles whatever is left.
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("clean-up aborted by an unexpected failure")
		}
	}()

	if !elevate.IsAdministrator() {
		logrus.Fatal("ccmclean must be run from an elevated prompt (run as administrator)")
	}

	mode := teardown.Mode{DryRun: dryRun, Confirm: confirm}
	paths := constant.GetPaths(viper.GetString("system-root"), os.Getenv)

	cfg, err := cleanup.NewConfig(mode, promptOnStdin(cmd), paths)
	if err != nil {
		return err
	}

	if mode.DryRun {
		logrus.Info("dry-run mode: reporting planned removals, changing nothing")
	}

	if err := cfg.Cleanup(); err != nil {
		logrus.WithError(err).Error("clean-up finished with errors, see the summary")
	}

	out := cmd.OutOrStdout()
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd())
	}
	cleanup.WriteSummary(out, cfg.Results(), colored)

	if mode.DryRun {
		logrus.Info("dry-run complete, nothing was changed")
		return nil
	}
	logrus.Info("clean-up operations done. To ensure a full removal, a reboot is recommended.")
	return nil
}

// promptOnStdin asks for a per-action yes/no on the command's input
// stream. Anything but an explicit yes declines.
func promptOnStdin(cmd *cobra.Command) func(action string) bool {
	reader := bufio.NewReader(cmd.InOrStdin())
	return func(action string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "remove %s? [y/N]: ", action)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}
