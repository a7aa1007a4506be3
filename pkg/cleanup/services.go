// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"github.com/sirupsen/logrus"

	"github.com/winadmins/ccmclean/pkg/teardown"
)

// serviceManager is the slice of the service control manager this step
// needs. Implemented by winsvc.Manager on Windows and by fakes in tests.
type serviceManager interface {
	Exists(name string) (bool, error)
	Running(name string) (bool, error)
	// Stop requests a stop and waits, bounded, for the stopped state.
	Stop(name string) error
	Delete(name string) error
}

// services removes the client's service registrations, stopping each
// running service first.
type services struct {
	mgr   serviceManager
	names []string
}

// Name returns the name of the step
func (s *services) Name() string {
	return "remove client services"
}

// Run processes every service name in its fixed order.
func (s *services) Run(r *teardown.Runner) ([]teardown.Result, error) {
	targets := make([]teardown.Target, 0, len(s.names))
	for _, name := range s.names {
		targets = append(targets, &serviceTarget{name: name, mgr: s.mgr})
	}
	return r.ProcessAll(targets), nil
}

type serviceTarget struct {
	name string
	mgr  serviceManager
}

func (t *serviceTarget) Kind() string   { return "service" }
func (t *serviceTarget) String() string { return t.name }

func (t *serviceTarget) Exists() (bool, error) {
	return t.mgr.Exists(t.name)
}

// Remove stops the service if it is running, then deletes its
// registration. A stop failure is only a warning: a service that refuses
// to stop is still better deleted than left registered.
func (t *serviceTarget) Remove() error {
	running, err := t.mgr.Running(t.name)
	if err != nil {
		logrus.WithField("service", t.name).WithError(err).Warn("could not determine service state")
	}
	if running {
		logrus.WithField("service", t.name).Info("stopping service")
		if err := t.mgr.Stop(t.name); err != nil {
			logrus.WithField("service", t.name).WithError(err).Warn("service did not stop, attempting deletion anyway")
		}
	}
	return t.mgr.Delete(t.name)
}
