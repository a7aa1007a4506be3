// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

// Package winsvc talks to the Windows service control manager: service
// lookup, bounded stop, and deletion of the service registration.
package winsvc

import (
	"errors"
	"time"

	"github.com/avast/retry-go"
)

const (
	// How long a service gets to reach the stopped state after a stop
	// request before its deletion is attempted anyway.
	stopPollInterval = 1 * time.Second
	stopPollAttempts = 30
)

// ErrStopTimeout is returned when a service does not reach the stopped
// state within the poll budget.
var ErrStopTimeout = errors.New("service did not stop in time")

var errStillRunning = errors.New("still running")

// waitStopped polls the given status source once per interval until it
// reports stopped or the attempt budget runs out. A status query error
// aborts the wait immediately. Extra options exist for the tests to
// collapse the delays.
func waitStopped(stopped func() (bool, error), opts ...retry.Option) error {
	options := append([]retry.Option{
		retry.Attempts(stopPollAttempts),
		retry.Delay(stopPollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	}, opts...)

	err := retry.Do(func() error {
		ok, err := stopped()
		if err != nil {
			return retry.Unrecoverable(err)
		}
		if !ok {
			return errStillRunning
		}
		return nil
	}, options...)

	if errors.Is(err, errStillRunning) {
		return ErrStopTimeout
	}
	return err
}
