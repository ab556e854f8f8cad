// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var signInCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "team_service",
	Name:      "sign_in_total",
	Help:      "The total number of sign in attempts",
}, []string{"result"})
