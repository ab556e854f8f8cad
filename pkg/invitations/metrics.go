// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "team_service",
	Subsystem: "invitations",
	Name:      "transitions_total",
	Help:      "The total number of invitation status changes",
}, []string{"status"})
