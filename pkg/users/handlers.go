// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/canonical/team-service/internal/authorization"
	httptypes "github.com/canonical/team-service/internal/http/types"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/users/me", a.me)
	mux.Patch("/users/me/update", a.updateMe)
	mux.Get("/users", a.list)
	mux.Get("/users/{id}", a.get)
	mux.Delete("/users/{id}", a.delete)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.me")
	defer span.End()

	current, ok := authentication.GetUser(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	user, err := a.service.GetMe(ctx, current)
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := MeResponse{User: user}
	if data, ok := authentication.GetTokenData(ctx); ok {
		resp.Auth = &authentication.AuthPayload{Token: data.Token, CreatedAt: data.CreatedAt}
	}

	_ = httptypes.WriteData(w, http.StatusOK, "current user", resp)
}

func (a *API) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.updateMe")
	defer span.End()

	current, ok := authentication.GetUser(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	teamID := r.URL.Query().Get("team_id")
	if uuid.Validate(teamID) != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "team_id is required and must be a UUID")
		return
	}

	req := new(UpdateMeRequest)
	if err := httptypes.DecodeAndValidate(r, req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.service.UpdateMe(ctx, current, teamID, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "user updated", user)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.list")
	defer span.End()

	q := r.URL.Query()

	teamID := q.Get("team_id")
	// web clients send the literal "undefined" before a team is picked
	if teamID == "undefined" {
		teamID = ""
	}
	if teamID != "" && uuid.Validate(teamID) != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "team_id must be a UUID")
		return
	}

	page, err := parseInt(q.Get("page"))
	if err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "page must be an integer")
		return
	}
	size, err := parseInt(q.Get("size"))
	if err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "size must be an integer")
		return
	}

	users, meta, err := a.service.ListTeamUsers(ctx, teamID, page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WritePage(w, "team users", users, meta)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.get")
	defer span.End()

	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		a.writeError(w, ErrUserNotFound)
		return
	}

	user, err := a.service.GetUser(ctx, id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "user", user)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.delete")
	defer span.End()

	current, ok := authentication.GetUser(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		a.writeError(w, ErrUserNotFound)
		return
	}

	teamID := r.URL.Query().Get("team_id")
	if uuid.Validate(teamID) != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "team_id is required and must be a UUID")
		return
	}

	if err := a.service.DeleteUser(ctx, id, teamID, current); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	var unknownRole *UnknownRoleError

	var status int
	switch {
	case errors.As(err, &unknownRole):
		status = http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, authorization.ErrNotATeamMember), errors.Is(err, authorization.ErrForbidden):
		status = http.StatusForbidden
	default:
		a.logger.Errorf("user request failed: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	_ = httptypes.WriteError(w, status, err.Error())
}

func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

