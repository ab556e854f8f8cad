// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httptypes "github.com/canonical/team-service/internal/http/types"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/teams", a.list)
	mux.Post("/teams", a.create)
	mux.Get("/teams/{id}", a.get)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.list")
	defer span.End()

	teams, err := a.service.ListTeams(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "teams", teams)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.get")
	defer span.End()

	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		a.writeError(w, ErrTeamNotFound)
		return
	}

	team, err := a.service.GetTeam(ctx, id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "team", team)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.create")
	defer span.End()

	req := new(CreateTeamRequest)
	if err := httptypes.DecodeAndValidate(r, req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	team, err := a.service.CreateTeam(ctx, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, "team created", team)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrTeamNotFound) {
		_ = httptypes.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	a.logger.Errorf("team request failed: %v", err)
	_ = httptypes.WriteError(w, http.StatusInternalServerError, "internal server error")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}
