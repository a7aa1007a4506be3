//go:build windows

// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

// Package wmi checks for and removes CIM namespace registrations.
package wmi

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	wmiquery "github.com/yusufpapurcu/wmi"
)

const sFalse = 0x00000001 // CoInitializeEx: already initialized on this thread

// Client talks to the local CIM repository.
type Client struct{}

// NewClient returns a client for the local machine.
func NewClient() *Client { return &Client{} }

// Exists reports whether the parent namespace has a child namespace with
// the given name.
func (*Client) Exists(parent, name string) (bool, error) {
	var dst []struct{ Name string }
	q := fmt.Sprintf("SELECT Name FROM __NAMESPACE WHERE Name = '%s'", name)
	if err := wmiquery.QueryNamespace(q, &dst, parent); err != nil {
		return false, fmt.Errorf("failed to query namespace %s for %s: %w", parent, name, err)
	}
	return len(dst) > 0, nil
}

// Remove deletes the child namespace registration from the parent
// namespace through the WMI scripting API.
func (*Client) Remove(parent, name string) error {
	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		code := err.(*ole.OleError).Code()
		if code != ole.S_OK && code != sFalse {
			return fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return fmt.Errorf("failed to create WMI locator: %w", err)
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query WMI locator interface: %w", err)
	}
	defer locator.Release()

	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, parent)
	if err != nil {
		return fmt.Errorf("failed to connect to namespace %s: %w", parent, err)
	}
	defer serviceRaw.Clear()

	service := serviceRaw.ToIDispatch()
	if _, err := oleutil.CallMethod(service, "Delete", fmt.Sprintf("__NAMESPACE.Name='%s'", name)); err != nil {
		return fmt.Errorf("failed to delete namespace %s under %s: %w", name, parent, err)
	}
	return nil
}
