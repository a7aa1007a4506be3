// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/winadmins/ccmclean/internal/pkg/file"
	"github.com/winadmins/ccmclean/pkg/teardown"
)

// commandRunner runs one external command to completion and reports its
// exit code.
type commandRunner interface {
	Run(path string, arg string) (int, error)
}

type execRunner struct{}

func (execRunner) Run(path string, arg string) (int, error) {
	if err := exec.Command(path, arg).Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}

// uninstaller invokes the vendor-supplied silent uninstall, when the
// uninstaller binary is still around. Its exit code is informational; the
// manual teardown that follows is the real removal mechanism.
type uninstaller struct {
	path string
	arg  string
	run  commandRunner
}

// Name returns the name of the step
func (u *uninstaller) Name() string {
	return "vendor uninstall attempt"
}

// Run attempts the vendor uninstall through the common teardown cycle.
func (u *uninstaller) Run(r *teardown.Runner) ([]teardown.Result, error) {
	return r.ProcessAll([]teardown.Target{
		&uninstallerTarget{path: u.path, arg: u.arg, run: u.run},
	}), nil
}

type uninstallerTarget struct {
	path string
	arg  string
	run  commandRunner
}

func (t *uninstallerTarget) Kind() string   { return "vendor uninstaller" }
func (t *uninstallerTarget) String() string { return t.path }

func (t *uninstallerTarget) Exists() (bool, error) {
	return file.Exists(t.path), nil
}

func (t *uninstallerTarget) Remove() error {
	logrus.Infof("invoking %s %s and waiting for it to finish", t.path, t.arg)
	code, err := t.run.Run(t.path, t.arg)
	if err != nil {
		return fmt.Errorf("failed to run the vendor uninstaller: %w", err)
	}
	// A non-zero exit does not abort anything; the manual stages still run.
	logrus.Infof("vendor uninstaller exited with code %d", code)
	return nil
}

// SkipVerify is set: the uninstaller's work is re-checked by every
// following stage, not by re-statting the binary it may have deleted.
func (t *uninstallerTarget) SkipVerify() bool { return true }
