// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/winadmins/ccmclean/internal/pkg/file"
	"github.com/winadmins/ccmclean/pkg/teardown"
)

// files removes the client's directories and files. Plain paths go
// through the full verify cycle; glob patterns are expanded and their
// matches deleted without verification, since re-expanding under
// concurrent file activity is not a reliable re-check.
type files struct {
	paths []string
	globs []string
}

// Name returns the name of the step
func (f *files) Name() string {
	return "remove client files"
}

func (f *files) Run(r *teardown.Runner) ([]teardown.Result, error) {
	targets := make([]teardown.Target, 0, len(f.paths)+len(f.globs))
	for _, p := range f.paths {
		targets = append(targets, &pathTarget{path: p})
	}
	for _, g := range f.globs {
		targets = append(targets, &globTarget{pattern: g})
	}
	return r.ProcessAll(targets), nil
}

type pathTarget struct {
	path string
}

func (t *pathTarget) Kind() string   { return "file" }
func (t *pathTarget) String() string { return t.path }

func (t *pathTarget) Exists() (bool, error) {
	return file.PathExists(t.path), nil
}

func (t *pathTarget) Remove() error {
	if err := os.RemoveAll(t.path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", t.path, err)
	}
	return nil
}

type globTarget struct {
	pattern string
}

func (t *globTarget) Kind() string   { return "file pattern" }
func (t *globTarget) String() string { return t.pattern }

func (t *globTarget) Exists() (bool, error) {
	matches, err := filepath.Glob(t.pattern)
	if err != nil {
		return false, fmt.Errorf("bad pattern %s: %w", t.pattern, err)
	}
	return len(matches) > 0, nil
}

func (t *globTarget) Remove() error {
	matches, err := filepath.Glob(t.pattern)
	if err != nil {
		return fmt.Errorf("bad pattern %s: %w", t.pattern, err)
	}
	var errs []error
	for _, m := range matches {
		logrus.Infof("deleting %s", m)
		if err := os.RemoveAll(m); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", m, err))
		}
	}
	return errors.Join(errs...)
}

// SkipVerify exempts pattern targets from the re-check; success is
// assumed when no deletion surfaced an error.
func (t *globTarget) SkipVerify() bool { return true }
