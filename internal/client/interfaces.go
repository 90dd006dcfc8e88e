// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-lms-offline/internal/service"
	"github.com/MKhiriev/go-lms-offline/models"
)

// TaskRunner executes a task together with every follow-up task it
// produces.
type TaskRunner interface {
	Run(ctx context.Context, task service.Task) (service.TaskResult, error)
}

// NetworkMonitor reports the connectivity of the device. It is asked once
// at the start of every operation.
type NetworkMonitor interface {
	NetworkState() models.NetworkState
}

// StaticNetwork is a NetworkMonitor always reporting the same state.
type StaticNetwork models.NetworkState

func (s StaticNetwork) NetworkState() models.NetworkState {
	return models.NetworkState(s)
}
