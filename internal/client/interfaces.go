// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract for the runnable sync client. Run
// wires the local store, the endpoint adapter, the coordinator and the
// terminal UI together and blocks until the user exits.
type Client interface {
	Run() error
}
