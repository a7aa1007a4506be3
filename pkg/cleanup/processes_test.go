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

type fakeProcessKiller struct {
	pids    map[string][]int32
	killErr map[int32]error
	killed  []int32
}

func (f *fakeProcessKiller) Find(image string) ([]int32, error) {
	return f.pids[image], nil
}

func (f *fakeProcessKiller) Kill(pid int32) error {
	f.killed = append(f.killed, pid)
	if err := f.killErr[pid]; err != nil {
		return err
	}
	for image, pids := range f.pids {
		var left []int32
		for _, p := range pids {
			if p != pid {
				left = append(left, p)
			}
		}
		f.pids[image] = left
	}
	return nil
}

func TestProcessesKillsAllInstances(t *testing.T) {
	killer := &fakeProcessKiller{pids: map[string][]int32{"CcmExec.exe": {101, 102}}}
	step := &processes{kill: killer, images: []string{"CcmExec.exe"}}

	results, err := step.Run(teardown.NewRunner(teardown.Mode{}, nil))
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Succeeded)
	assert.Equal(t, []int32{101, 102}, killer.killed)
}

func TestProcessesNoneRunning(t *testing.T) {
	killer := &fakeProcessKiller{pids: map[string][]int32{}}
	step := &processes{kill: killer, images: []string{"CcmExec.exe", "ccmsetup.exe"}}

	results, err := step.Run(teardown.NewRunner(teardown.Mode{}, nil))
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, res := range results {
		assert.False(t, res.Found)
		assert.True(t, res.Succeeded)
	}
	assert.Empty(t, killer.killed)
}

func TestProcessesKillFailureReported(t *testing.T) {
	killer := &fakeProcessKiller{
		pids:    map[string][]int32{"CcmExec.exe": {101}},
		killErr: map[int32]error{101: errors.New("access denied")},
	}
	step := &processes{kill: killer, images: []string{"CcmExec.exe"}}

	results, err := step.Run(teardown.NewRunner(teardown.Mode{}, nil))
	require.NoError(t, err)

	assert.False(t, results[0].Succeeded)
	assert.Contains(t, results[0].Msg, "access denied")
}
