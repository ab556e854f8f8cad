// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/team-service/internal/http/types"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/tracing"
)

const bearerKeyword = "Bearer"

type Middleware struct {
	validator TokenValidatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			if r.Header.Get("Authorization") == "" {
				m.unauthorizedResponse(w, "authentication credentials were not provided")
				return
			}

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorizedResponse(w, "invalid Authorization header format, expected 'Bearer <token>'")
				return
			}

			data, err := m.validator.ValidateToken(ctx, token)
			if err != nil {
				m.logger.Errorf("token validation failed: %v", err)
				m.unauthorizedResponse(w, "invalid or expired token")
				return
			}
			if data == nil {
				m.logger.Debugf("rejected unknown or revoked token on %s", r.URL.Path)
				m.unauthorizedResponse(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTokenData(ctx, data)))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	parts := strings.Fields(headers.Get("Authorization"))
	if len(parts) != 2 || parts[0] != bearerKeyword {
		return "", false
	}

	return parts[1], true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", bearerKeyword)
	if err := httptypes.WriteError(w, http.StatusUnauthorized, message); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func NewMiddleware(validator TokenValidatorInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		validator: validator,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
