// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

// Package cleanup runs the removal stages in their fixed order: vendor
// uninstall attempt, services, leftover processes, WMI namespaces,
// registry keys, files. Each stage feeds its targets through the shared
// teardown cycle and a failing stage never blocks the ones after it.
package cleanup

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/winadmins/ccmclean/pkg/teardown"
)

// Step interface is used to implement cleanup steps
type Step interface {
	// Run processes the step's targets through the given runner.
	Run(r *teardown.Runner) ([]teardown.Result, error)
	// Name returns name of the step for convenience
	Name() string
}

// Config is an ordered set of cleanup steps.
type Config struct {
	runner  *teardown.Runner
	steps   []Step
	results []teardown.Result
}

// Cleanup runs all steps in order, collecting per-step errors instead of
// stopping. The per-target outcomes are kept for the summary.
func (c *Config) Cleanup() error {
	var errs []error

	for _, step := range c.steps {
		logrus.Info("* ", step.Name())
		results, err := step.Run(c.runner)
		c.results = append(c.results, results...)
		if err != nil {
			logrus.Debug(err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during clean-up: %w", errors.Join(errs...))
	}
	return nil
}

// Results returns the per-target outcomes of all steps run so far.
func (c *Config) Results() []teardown.Result {
	return c.results
}
