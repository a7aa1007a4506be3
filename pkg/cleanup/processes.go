// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/sirupsen/logrus"

	"github.com/winadmins/ccmclean/pkg/teardown"
)

// processKiller finds and force-terminates processes by image name.
type processKiller interface {
	Find(image string) ([]int32, error)
	Kill(pid int32) error
}

type gopsutilKiller struct{}

func (gopsutilKiller) Find(image string) ([]int32, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	var pids []int32
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Raced with process exit, or access denied on a system
			// process. Neither can be a client process worth killing.
			continue
		}
		if strings.EqualFold(name, image) {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

func (gopsutilKiller) Kill(pid int32) error {
	p, err := process.NewProcess(pid)
	if err != nil {
		return err
	}
	return p.Kill()
}

// processes is the safety net after service teardown: any client process
// still alive, whatever its service state, is terminated so it cannot pin
// the files and registry keys the later stages delete.
type processes struct {
	kill   processKiller
	images []string
}

// Name returns the name of the step
func (p *processes) Name() string {
	return "terminate leftover client processes"
}

func (p *processes) Run(r *teardown.Runner) ([]teardown.Result, error) {
	targets := make([]teardown.Target, 0, len(p.images))
	for _, image := range p.images {
		targets = append(targets, &processTarget{image: image, kill: p.kill})
	}
	return r.ProcessAll(targets), nil
}

type processTarget struct {
	image string
	kill  processKiller
}

func (t *processTarget) Kind() string   { return "process" }
func (t *processTarget) String() string { return t.image }

func (t *processTarget) Exists() (bool, error) {
	pids, err := t.kill.Find(t.image)
	if err != nil {
		return false, err
	}
	return len(pids) > 0, nil
}

func (t *processTarget) Remove() error {
	pids, err := t.kill.Find(t.image)
	if err != nil {
		return err
	}
	var errs []error
	for _, pid := range pids {
		logrus.WithField("pid", pid).Infof("force-terminating %s", t.image)
		if err := t.kill.Kill(pid); err != nil {
			errs = append(errs, fmt.Errorf("failed to kill pid %d: %w", pid, err))
		}
	}
	return errors.Join(errs...)
}
