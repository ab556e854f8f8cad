// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/team-service/internal/http/types"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthPayload struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

type SignInResponse struct {
	Auth AuthPayload `json:"auth"`
	User *types.User `json:"user"`
}

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/users/token", a.token)
}

func (a *API) token(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.token")
	defer span.End()

	var req SignInRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		status, message := a.errorStatus(err)
		_ = httptypes.WriteError(w, status, message)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "signed in", SignInResponse{
		Auth: AuthPayload{Token: result.Token, CreatedAt: result.CreatedAt},
		User: result.User,
	})
}

func (a *API) errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrUserInactive):
		return http.StatusForbidden, err.Error()
	default:
		a.logger.Errorf("sign in failed: %v", err)
		return http.StatusInternalServerError, "internal server error"
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}
