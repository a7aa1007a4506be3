// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winadmins/ccmclean/pkg/teardown"
	"github.com/winadmins/ccmclean/pkg/winsvc"
)

// fakeServiceManager models SCM state per service name and records the
// order of mutating calls.
type fakeServiceManager struct {
	installed map[string]bool
	running   map[string]bool
	stopErr   map[string]error
	deleteErr map[string]error
	calls     []string
}

func (f *fakeServiceManager) Exists(name string) (bool, error) {
	return f.installed[name], nil
}

func (f *fakeServiceManager) Running(name string) (bool, error) {
	return f.running[name], nil
}

func (f *fakeServiceManager) Stop(name string) error {
	f.calls = append(f.calls, "stop "+name)
	if err := f.stopErr[name]; err != nil {
		return err
	}
	f.running[name] = false
	return nil
}

func (f *fakeServiceManager) Delete(name string) error {
	f.calls = append(f.calls, "delete "+name)
	if err := f.deleteErr[name]; err != nil {
		return err
	}
	f.installed[name] = false
	return nil
}

func runServices(t *testing.T, mgr *fakeServiceManager, names ...string) []teardown.Result {
	t.Helper()
	step := &services{mgr: mgr, names: names}
	results, err := step.Run(teardown.NewRunner(teardown.Mode{}, nil))
	require.NoError(t, err)
	require.Len(t, results, len(names))
	return results
}

func TestServicesAbsentServiceIsSkipped(t *testing.T) {
	mgr := &fakeServiceManager{installed: map[string]bool{}, running: map[string]bool{}}
	results := runServices(t, mgr, "CcmExec")

	assert.False(t, results[0].Found)
	assert.True(t, results[0].Succeeded)
	assert.Empty(t, mgr.calls, "no stop or delete for an absent service")
}

func TestServicesRunningServiceStoppedBeforeDelete(t *testing.T) {
	mgr := &fakeServiceManager{
		installed: map[string]bool{"CcmExec": true},
		running:   map[string]bool{"CcmExec": true},
	}
	results := runServices(t, mgr, "CcmExec")

	assert.True(t, results[0].Succeeded)
	assert.Equal(t, []string{"stop CcmExec", "delete CcmExec"}, mgr.calls)
}

func TestServicesStoppedServiceIsNotStoppedAgain(t *testing.T) {
	mgr := &fakeServiceManager{
		installed: map[string]bool{"smstsmgr": true},
		running:   map[string]bool{},
	}
	results := runServices(t, mgr, "smstsmgr")

	assert.True(t, results[0].Succeeded)
	assert.Equal(t, []string{"delete smstsmgr"}, mgr.calls)
}

func TestServicesStopTimeoutStillDeletes(t *testing.T) {
	mgr := &fakeServiceManager{
		installed: map[string]bool{"CcmExec": true},
		running:   map[string]bool{"CcmExec": true},
		stopErr:   map[string]error{"CcmExec": winsvc.ErrStopTimeout},
	}
	results := runServices(t, mgr, "CcmExec")

	assert.True(t, results[0].Succeeded)
	assert.Equal(t, []string{"stop CcmExec", "delete CcmExec"}, mgr.calls,
		"deletion must be attempted even when the stop timed out")
}

func TestServicesDeleteFailureIsReported(t *testing.T) {
	mgr := &fakeServiceManager{
		installed: map[string]bool{"CmRcService": true},
		running:   map[string]bool{},
		deleteErr: map[string]error{"CmRcService": errors.New("access denied")},
	}
	results := runServices(t, mgr, "CmRcService")

	assert.False(t, results[0].Succeeded)
	assert.Contains(t, results[0].Msg, "access denied")
}

func TestServicesFailureDoesNotBlockSiblings(t *testing.T) {
	mgr := &fakeServiceManager{
		installed: map[string]bool{"ccmsetup": true, "CcmExec": true},
		running:   map[string]bool{},
		deleteErr: map[string]error{"ccmsetup": errors.New("stuck")},
	}
	results := runServices(t, mgr, "ccmsetup", "CcmExec")

	assert.False(t, results[0].Succeeded)
	assert.True(t, results[1].Succeeded)
}
