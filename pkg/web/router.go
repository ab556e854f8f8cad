// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/team-service/internal/authorization"
	"github.com/canonical/team-service/internal/db"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/pkg/authentication"
	"github.com/canonical/team-service/pkg/invitations"
	"github.com/canonical/team-service/pkg/metrics"
	"github.com/canonical/team-service/pkg/status"
	"github.com/canonical/team-service/pkg/teams"
	"github.com/canonical/team-service/pkg/users"
)

const apiPrefix = "/api/v0"

type Config struct {
	AllowedOrigins []string
	FrontendURL    string
	BcryptCost     int
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	router.Use(middlewares...)

	hasher := authentication.NewPasswordHasher(cfg.BcryptCost)
	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	authService := authentication.NewService(s, dbClient, hasher, tracer, monitor, logger)
	invitationService := invitations.NewService(s, dbClient, hasher, cfg.FrontendURL, tracer, monitor, logger)
	userService := users.NewService(s, authorizer, dbClient, tracer, monitor, logger)
	teamService := teams.NewService(s, tracer, monitor, logger)

	authAPI := authentication.NewAPI(authService, tracer, logger)
	invitationAPI := invitations.NewAPI(invitationService, tracer, logger)
	userAPI := users.NewAPI(userService, tracer, logger)
	teamAPI := teams.NewAPI(teamService, tracer, logger)

	authMiddleware := authentication.NewMiddleware(authService, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	router.Route(apiPrefix, func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))

		r.Group(func(public chi.Router) {
			authAPI.RegisterEndpoints(public)
			invitationAPI.RegisterPublicEndpoints(public)
		})

		r.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.Authenticate())

			userAPI.RegisterEndpoints(protected)
			teamAPI.RegisterEndpoints(protected)
			invitationAPI.RegisterEndpoints(protected)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
