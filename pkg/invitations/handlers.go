// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httptypes "github.com/canonical/team-service/internal/http/types"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
	"github.com/canonical/team-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterPublicEndpoints mounts the routes an invitee uses before having a token.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Get("/invitations/{token}", a.getByToken)
	mux.Get("/invitations/{token}/check-user", a.checkUser)
	mux.Post("/accept", a.accept)
	mux.Post("/invitations/accept", a.accept)
	mux.Post("/invitations/{token}/register", a.register)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/teams/{team_id}/invitations", a.create)
	mux.Get("/teams/{team_id}/invitations", a.listByTeam)
	mux.Get("/invitations", a.list)
	mux.Patch("/invitations/{id}/cancel", a.cancel)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.create")
	defer span.End()

	user, ok := authentication.GetUser(ctx)
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	teamID := chi.URLParam(r, "team_id")
	if !isUUID(teamID) {
		a.writeError(w, ErrTeamNotFound)
		return
	}

	req := new(CreateInvitationRequest)
	if err := httptypes.DecodeAndValidate(r, req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	inv, url, err := a.service.CreateInvitation(ctx, teamID, user.ID, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, "invitation created", CreateInvitationResponse{Invitation: inv, InviteURL: url})
}

func (a *API) listByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listByTeam")
	defer span.End()

	teamID := chi.URLParam(r, "team_id")
	if !isUUID(teamID) {
		a.writeError(w, ErrTeamNotFound)
		return
	}

	a.writeList(w, r.WithContext(ctx), teamID)
}

// list answers an empty list when no team is selected.
func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.list")
	defer span.End()

	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		_ = httptypes.WriteData(w, http.StatusOK, "invitations", []*types.Invitation{})
		return
	}
	if !isUUID(teamID) {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "team_id must be a UUID")
		return
	}

	a.writeList(w, r.WithContext(ctx), teamID)
}

func (a *API) writeList(w http.ResponseWriter, r *http.Request, teamID string) {
	invitations, err := a.service.ListTeamInvitations(r.Context(), teamID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "invitations", invitations)
}

func (a *API) getByToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.getByToken")
	defer span.End()

	token := chi.URLParam(r, "token")
	if !isUUID(token) {
		a.writeError(w, ErrInvitationNotFound)
		return
	}

	inv, err := a.service.GetInvitationByTokenWithoutStatusCheck(ctx, token)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "invitation", inv)
}

func (a *API) checkUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.checkUser")
	defer span.End()

	token := chi.URLParam(r, "token")
	if !isUUID(token) {
		a.writeError(w, ErrInvitationNotFound)
		return
	}

	inv, err := a.service.GetInvitationByTokenWithoutStatusCheck(ctx, token)
	if err != nil {
		a.writeError(w, err)
		return
	}

	exists, err := a.service.CheckUserExists(ctx, inv.Email)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "user check", CheckUserResponse{UserExists: exists, Email: inv.Email})
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.accept")
	defer span.End()

	req := new(AcceptInvitationRequest)
	if err := httptypes.DecodeAndValidate(r, req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !isUUID(req.Token) {
		a.writeError(w, ErrInvitationNotFound)
		return
	}

	if err := a.service.AcceptInvitation(ctx, req.Token); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.register")
	defer span.End()

	token := chi.URLParam(r, "token")
	if !isUUID(token) {
		a.writeError(w, ErrInvitationNotFound)
		return
	}

	req := new(RegisterRequest)
	if err := httptypes.DecodeAndValidate(r, req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.service.RegisterUserByInvitation(ctx, token, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, "user registered", user)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.cancel")
	defer span.End()

	id := chi.URLParam(r, "id")
	if !isUUID(id) {
		a.writeError(w, ErrInvitationNotFound)
		return
	}

	if err := a.service.CancelInvitation(ctx, id); err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "invitation cancelled", nil)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, ErrUserMustRegister), errors.Is(err, ErrInvitationEmailMismatch), errors.Is(err, ErrPasswordTooLong):
		status = http.StatusBadRequest
	case errors.Is(err, ErrInvitationNotFound), errors.Is(err, ErrTeamNotFound), errors.Is(err, ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvitationInvalid), errors.Is(err, ErrEmailAlreadyExists):
		status = http.StatusConflict
	default:
		a.logger.Errorf("invitation request failed: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	_ = httptypes.WriteError(w, status, err.Error())
}

func isUUID(s string) bool {
	return uuid.Validate(s) == nil
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}
