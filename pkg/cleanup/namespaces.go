// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"github.com/winadmins/ccmclean/pkg/teardown"
)

// namespaceClient is the slice of the CIM repository this step needs.
// Implemented by wmi.Client on Windows and by fakes in tests.
type namespaceClient interface {
	Exists(parent, name string) (bool, error)
	Remove(parent, name string) error
}

// namespaces removes the client's CIM namespace registrations. Each pair
// is isolated by the teardown cycle, so one stubborn namespace cannot
// block the other or the stages after it.
type namespaces struct {
	client namespaceClient
	pairs  [][2]string
}

// Name returns the name of the step
func (n *namespaces) Name() string {
	return "remove WMI namespaces"
}

func (n *namespaces) Run(r *teardown.Runner) ([]teardown.Result, error) {
	targets := make([]teardown.Target, 0, len(n.pairs))
	for _, pair := range n.pairs {
		targets = append(targets, &namespaceTarget{parent: pair[0], name: pair[1], client: n.client})
	}
	return r.ProcessAll(targets), nil
}

type namespaceTarget struct {
	parent string
	name   string
	client namespaceClient
}

func (t *namespaceTarget) Kind() string   { return "wmi namespace" }
func (t *namespaceTarget) String() string { return t.parent + `\` + t.name }

func (t *namespaceTarget) Exists() (bool, error) {
	return t.client.Exists(t.parent, t.name)
}

func (t *namespaceTarget) Remove() error {
	return t.client.Remove(t.parent, t.name)
}
