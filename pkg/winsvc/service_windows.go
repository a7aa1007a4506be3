//go:build windows

// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package winsvc

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

// Access rights sufficient to query, stop and delete a service we do not
// own. Full mgr.Connect access would needlessly require all-access rights
// on the SCM.
const serviceAccess = windows.SERVICE_QUERY_STATUS |
	windows.SERVICE_STOP |
	windows.SERVICE_INTERROGATE |
	windows.DELETE

// Manager performs operations against the local service control manager.
// Every operation opens and closes its own SCM connection, so a Manager
// holds no state and needs no cleanup.
type Manager struct{}

// NewManager returns a manager for the local SCM.
func NewManager() *Manager { return &Manager{} }

var errServiceNotFound = errors.New("service does not exist")

// withService runs fn against the opened named service. Returns
// errServiceNotFound when there is no such registration.
func (*Manager) withService(name string, fn func(*mgr.Service) error) error {
	h, err := windows.OpenSCManager(nil, nil, windows.SC_MANAGER_CONNECT)
	if err != nil {
		return fmt.Errorf("failed to connect to the service control manager: %w", err)
	}
	m := &mgr.Mgr{Handle: h}
	defer m.Disconnect()

	sh, err := windows.OpenService(m.Handle, syscall.StringToUTF16Ptr(name), serviceAccess)
	if err != nil {
		if errors.Is(err, windows.ERROR_SERVICE_DOES_NOT_EXIST) {
			return errServiceNotFound
		}
		return fmt.Errorf("failed to open service %s: %w", name, err)
	}
	s := &mgr.Service{Name: name, Handle: sh}
	defer s.Close()

	return fn(s)
}

// Exists reports whether a service registration with the given name is
// present.
func (m *Manager) Exists(name string) (bool, error) {
	err := m.withService(name, func(*mgr.Service) error { return nil })
	if errors.Is(err, errServiceNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Running reports whether the named service is currently not stopped. An
// absent service counts as not running.
func (m *Manager) Running(name string) (bool, error) {
	var running bool
	err := m.withService(name, func(s *mgr.Service) error {
		status, err := s.Query()
		if err != nil {
			return fmt.Errorf("failed to query service %s: %w", name, err)
		}
		running = status.State != svc.Stopped
		return nil
	})
	if errors.Is(err, errServiceNotFound) {
		return false, nil
	}
	return running, err
}

// Stop sends a stop control to the named service and waits, polling once
// per second for up to thirty seconds, for it to reach the stopped state.
// Returns ErrStopTimeout if it does not; the caller is expected to attempt
// deletion regardless.
func (m *Manager) Stop(name string) error {
	return m.withService(name, func(s *mgr.Service) error {
		status, err := s.Control(svc.Stop)
		if err != nil {
			// A service that stopped on its own between the query and the
			// control is fine.
			if errors.Is(err, windows.ERROR_SERVICE_NOT_ACTIVE) {
				return nil
			}
			return fmt.Errorf("failed to send stop to service %s: %w", name, err)
		}
		if status.State == svc.Stopped {
			return nil
		}

		return waitStopped(func() (bool, error) {
			status, err := s.Query()
			if err != nil {
				return false, fmt.Errorf("failed to query service %s: %w", name, err)
			}
			return status.State == svc.Stopped, nil
		})
	})
}

// Delete removes the service registration. A service already marked for
// deletion counts as removed; the mark clears on reboot, which the tool
// recommends anyway.
func (m *Manager) Delete(name string) error {
	return m.withService(name, func(s *mgr.Service) error {
		if err := s.Delete(); err != nil {
			if errors.Is(err, windows.ERROR_SERVICE_MARKED_FOR_DELETE) {
				return nil
			}
			return fmt.Errorf("failed to delete service %s: %w", name, err)
		}
		return nil
	})
}
