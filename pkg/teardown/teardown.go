// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

// Package teardown implements the idempotent removal cycle shared by every
// resource kind: check presence, gate on the run mode, remove, verify. A
// target that is already gone is a warning, never an error, so a re-run
// over a half-cleaned host converges instead of failing.
package teardown

import (
	"github.com/sirupsen/logrus"
)

// Target is one removable system resource.
type Target interface {
	// Kind names the resource kind for logs and the summary ("service",
	// "registry key", ...).
	Kind() string
	// String identifies the concrete target (service name, key path, ...).
	String() string
	// Exists reports whether the target is currently present. It is called
	// before any removal and again afterwards to verify, with identical
	// semantics both times.
	Exists() (bool, error)
	// Remove performs the destructive operation.
	Remove() error
}

// VerifySkipper is implemented by targets whose removal cannot be
// re-checked reliably, such as glob patterns whose expansion may change
// under concurrent file activity. For those, a nil Remove error counts as
// success.
type VerifySkipper interface {
	SkipVerify() bool
}

// Result is the outcome of processing a single target.
type Result struct {
	Kind   string
	Target string
	// Found is false when the presence check came up empty and nothing was
	// attempted.
	Found bool
	// Succeeded is true when the target is gone (or was never there).
	Succeeded bool
	// Planned marks a dry-run outcome: the removal was reported, not done.
	Planned bool
	// Skipped marks a removal the operator declined in confirm mode.
	Skipped bool
	// Msg carries the failure detail, if any.
	Msg string
}

// Mode selects between doing the work and talking about it.
type Mode struct {
	// DryRun reports the planned removals without mutating anything.
	DryRun bool
	// Confirm prompts before each destructive action.
	Confirm bool
}

// Runner drives targets through the teardown cycle.
type Runner struct {
	mode   Mode
	prompt func(action string) bool
	log    logrus.FieldLogger
}

// NewRunner returns a Runner for the given mode. The prompt func is
// consulted in confirm mode; a nil prompt declines everything.
func NewRunner(mode Mode, prompt func(action string) bool) *Runner {
	return &Runner{
		mode:   mode,
		prompt: prompt,
		log:    logrus.StandardLogger(),
	}
}

// Mode returns the runner's mode.
func (r *Runner) Mode() Mode { return r.mode }

// Process runs one target through the full cycle. Failures are captured in
// the Result, never propagated, so one stubborn target cannot take its
// siblings down with it.
func (r *Runner) Process(t Target) Result {
	res := Result{Kind: t.Kind(), Target: t.String()}
	log := r.log.WithFields(logrus.Fields{"kind": res.Kind, "target": res.Target})

	found, err := t.Exists()
	if err != nil {
		log.WithError(err).Warn("presence check failed")
		res.Msg = err.Error()
		return res
	}
	if !found {
		log.Warn("not found, nothing to do")
		res.Succeeded = true
		return res
	}
	res.Found = true

	if r.mode.DryRun {
		log.Info("dry-run: would remove")
		res.Planned = true
		res.Succeeded = true
		return res
	}
	if r.mode.Confirm && !r.confirm(res.Kind+" "+res.Target) {
		log.Info("skipped by operator")
		res.Skipped = true
		return res
	}

	removeErr := t.Remove()
	if removeErr != nil {
		// Best effort: record and fall through to verification, which has
		// the final say for verifiable targets.
		log.WithError(removeErr).Warn("removal reported an error")
		res.Msg = removeErr.Error()
	}

	if s, ok := t.(VerifySkipper); ok && s.SkipVerify() {
		res.Succeeded = removeErr == nil
		if res.Succeeded {
			log.Info("removal attempted, verification not applicable")
		}
		return res
	}

	still, err := t.Exists()
	switch {
	case err != nil:
		log.WithError(err).Warn("verification failed")
		res.Msg = err.Error()
	case still:
		log.Warn("still present after removal attempt")
		if res.Msg == "" {
			res.Msg = "still present after removal"
		}
	default:
		log.Info("removed")
		res.Succeeded = true
	}
	return res
}

// ProcessAll processes the targets strictly in order and returns one
// Result per target.
func (r *Runner) ProcessAll(targets []Target) []Result {
	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		results = append(results, r.Process(t))
	}
	return results
}

func (r *Runner) confirm(action string) bool {
	if r.prompt == nil {
		return false
	}
	return r.prompt(action)
}
