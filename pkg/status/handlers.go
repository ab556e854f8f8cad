// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/team-service/internal/http/types"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(context.Context) error
}

type Status struct {
	Version  string `json:"version"`
	Commit   string `json:"commit,omitempty"`
	Database string `json:"database"`
}

type API struct {
	db Pinger

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.status)
}

// status answers 503 while the database is unreachable.
func (a *API) status(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	s := Status{Version: version.Version, Commit: commit(), Database: "ok"}
	code := http.StatusOK

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	available := 1.0
	if err := a.db.Ping(pingCtx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		s.Database = "unavailable"
		code = http.StatusServiceUnavailable
		available = 0
	}

	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available); err != nil {
		a.logger.Debugf("failed to record database availability: %v", err)
	}

	_ = httptypes.WriteData(w, code, "status", s)
}

func commit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return ""
}

func NewAPI(db Pinger, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
