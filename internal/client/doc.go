// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the LMS client runtime.
//
// [App] wires configuration, storage, filesystem, transport and startup
// workers into one process lifecycle. [Manager] is the orchestrator: for
// every operation it resolves the connection mode from the current
// network state, asks the matching connection for a task and executes it.
package client
