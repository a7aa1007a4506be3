// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winadmins/ccmclean/pkg/teardown"
)

type fakeStep struct {
	name    string
	results []teardown.Result
	err     error
	ran     *[]string
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Run(*teardown.Runner) ([]teardown.Result, error) {
	*s.ran = append(*s.ran, s.name)
	return s.results, s.err
}

func TestCleanupRunsStepsInOrder(t *testing.T) {
	var ran []string
	cfg := &Config{
		runner: teardown.NewRunner(teardown.Mode{}, nil),
		steps: []Step{
			&fakeStep{name: "first", ran: &ran},
			&fakeStep{name: "second", ran: &ran},
			&fakeStep{name: "third", ran: &ran},
		},
	}

	require.NoError(t, cfg.Cleanup())
	assert.Equal(t, []string{"first", "second", "third"}, ran)
}

func TestCleanupContinuesPastStepErrors(t *testing.T) {
	var ran []string
	firstErr := errors.New("first step broke")
	cfg := &Config{
		runner: teardown.NewRunner(teardown.Mode{}, nil),
		steps: []Step{
			&fakeStep{name: "first", err: firstErr, ran: &ran},
			&fakeStep{name: "second", ran: &ran},
		},
	}

	err := cfg.Cleanup()
	require.Error(t, err)
	assert.ErrorIs(t, err, firstErr)
	assert.Equal(t, []string{"first", "second"}, ran, "a failing step must not block the next one")
}

func TestCleanupCollectsResults(t *testing.T) {
	var ran []string
	cfg := &Config{
		runner: teardown.NewRunner(teardown.Mode{}, nil),
		steps: []Step{
			&fakeStep{name: "a", ran: &ran, results: []teardown.Result{
				{Kind: "service", Target: "CcmExec", Found: true, Succeeded: true},
			}},
			&fakeStep{name: "b", ran: &ran, err: errors.New("partial"), results: []teardown.Result{
				{Kind: "registry key", Target: `HKLM\SOFTWARE\Microsoft\SMS`, Succeeded: true},
			}},
		},
	}

	_ = cfg.Cleanup()
	results := cfg.Results()
	require.Len(t, results, 2, "results must be kept even for steps that errored")
	assert.Equal(t, "CcmExec", results[0].Target)
	assert.Equal(t, `HKLM\SOFTWARE\Microsoft\SMS`, results[1].Target)
}
