// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/canonical/team-service/internal/db"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

const (
	captainRole      = "Captain"
	maxPasswordBytes = 72
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	tx          db.TxRunner
	hasher      PasswordHasherInterface
	frontendURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateInvitation stores a new pending invitation and returns it with the link
// the frontend serves for it. Several pending invitations for the same email may coexist.
func (s *Service) CreateInvitation(ctx context.Context, teamID, createdBy string, req *CreateInvitationRequest) (*types.Invitation, string, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CreateInvitation")
	defer span.End()

	if _, err := s.storage.GetTeamByID(ctx, teamID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrTeamNotFound
		}
		return nil, "", err
	}

	singleUse := true
	if req.SingleUse != nil {
		singleUse = *req.SingleUse
	}

	inv, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		Token:                       uuid.NewString(),
		TeamID:                      teamID,
		Email:                       strings.TrimSpace(req.Email),
		CreatedBy:                   createdBy,
		SingleUse:                   singleUse,
		IsCaptain:                   req.IsCaptain,
		HasPermissionManageUsers:    req.HasPermissionManageUsers,
		HasPermissionManageProjects: req.HasPermissionManageProjects,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, "", ErrTeamNotFound
		}
		return nil, "", fmt.Errorf("failed to create invitation: %w", err)
	}

	transitionCounter.WithLabelValues(string(types.InvitationStatusPending)).Inc()
	s.logger.Infof("invitation %s created for team %s by %s", inv.ID, teamID, createdBy)

	return inv, s.inviteURL(inv.Token), nil
}

func (s *Service) inviteURL(token string) string {
	return strings.TrimRight(s.frontendURL, "/") + "/invite/" + token
}

func (s *Service) GetInvitationByTokenWithoutStatusCheck(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.GetInvitationByTokenWithoutStatusCheck")
	defer span.End()

	inv, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	return inv, nil
}

// GetInvitationByToken only returns pending invitations.
func (s *Service) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.GetInvitationByToken")
	defer span.End()

	inv, err := s.GetInvitationByTokenWithoutStatusCheck(ctx, token)
	if err != nil {
		return nil, err
	}

	if inv.Status != types.InvitationStatusPending {
		return nil, &StatusError{Status: inv.Status}
	}

	return inv, nil
}

func (s *Service) CheckUserExists(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CheckUserExists")
	defer span.End()

	return s.storage.UserExistsByEmail(ctx, email)
}

// AcceptInvitation attaches the already registered invitee to the team and
// marks the invitation accepted, atomically.
func (s *Service) AcceptInvitation(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.AcceptInvitation")
	defer span.End()

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		inv, err := s.GetInvitationByToken(ctx, token)
		if err != nil {
			return err
		}

		user, err := s.storage.GetUserByEmail(ctx, inv.Email)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrUserMustRegister
			}
			return err
		}

		if err := s.attachUserToTeam(ctx, user, inv); err != nil {
			return err
		}

		return s.markAccepted(ctx, inv)
	})
	if err != nil {
		return err
	}

	transitionCounter.WithLabelValues(string(types.InvitationStatusAccepted)).Inc()
	return nil
}

// RegisterUserByInvitation creates the invitee account and accepts the invitation
// in one transaction. The email check runs before anything is written.
func (s *Service) RegisterUserByInvitation(ctx context.Context, token string, req *RegisterRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.RegisterUserByInvitation")
	defer span.End()

	var user *types.User
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		inv, err := s.GetInvitationByToken(ctx, token)
		if err != nil {
			return err
		}

		email := strings.TrimSpace(req.Email)
		if !strings.EqualFold(email, inv.Email) {
			return ErrInvitationEmailMismatch
		}

		// bcrypt only accepts up to 72 bytes, max=72 in the tag counts runes
		if len(req.Password) > maxPasswordBytes {
			return ErrPasswordTooLong
		}

		exists, err := s.storage.UserExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailAlreadyExists
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return err
		}

		user, err = s.storage.CreateUser(ctx, &types.User{
			Email:        email,
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			IsActive:     true,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		if err := s.attachUserToTeam(ctx, user, inv); err != nil {
			return err
		}

		return s.markAccepted(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	transitionCounter.WithLabelValues(string(types.InvitationStatusAccepted)).Inc()
	return user, nil
}

// CancelInvitation is idempotent on cancelled invitations. Accepted ones stay accepted.
func (s *Service) CancelInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CancelInvitation")
	defer span.End()

	inv, err := s.storage.GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}

	if inv.Status == types.InvitationStatusAccepted {
		return &StatusError{Status: inv.Status}
	}

	err = s.storage.TransitionInvitation(
		ctx, inv.ID,
		types.InvitationStatusCancelled,
		types.InvitationStatusPending, types.InvitationStatusCancelled,
	)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationInvalid
		}
		return fmt.Errorf("failed to cancel invitation: %w", err)
	}

	if inv.Status == types.InvitationStatusPending {
		transitionCounter.WithLabelValues(string(types.InvitationStatusCancelled)).Inc()
	}

	return nil
}

// ListTeamInvitations returns newest first.
func (s *Service) ListTeamInvitations(ctx context.Context, teamID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListTeamInvitations")
	defer span.End()

	return s.storage.ListInvitationsByTeamID(ctx, teamID)
}

// attachUserToTeam is a no-op when the user already has a live membership.
// Captains always get both permission flags and the Captain role.
func (s *Service) attachUserToTeam(ctx context.Context, user *types.User, inv *types.Invitation) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.attachUserToTeam")
	defer span.End()

	_, err := s.storage.GetLiveMembership(ctx, user.ID, inv.TeamID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	membership := &types.UserTeam{
		UserID:                      user.ID,
		TeamID:                      inv.TeamID,
		HasPermissionManageUsers:    inv.HasPermissionManageUsers,
		HasPermissionManageProjects: inv.HasPermissionManageProjects,
	}
	if inv.IsCaptain {
		membership.HasPermissionManageUsers = true
		membership.HasPermissionManageProjects = true
	}

	if _, err := s.storage.CreateMembership(ctx, membership); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Debugf("user %s joined team %s concurrently", user.ID, inv.TeamID)
			return nil
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}

	if inv.IsCaptain {
		teamID := inv.TeamID
		if _, err := s.storage.CreateRole(ctx, &types.Role{UserID: user.ID, TeamID: &teamID, Role: captainRole}); err != nil {
			return fmt.Errorf("failed to create captain role: %w", err)
		}
	}

	return nil
}

func (s *Service) markAccepted(ctx context.Context, inv *types.Invitation) error {
	err := s.storage.TransitionInvitation(ctx, inv.ID, types.InvitationStatusAccepted, types.InvitationStatusPending)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationInvalid
		}
		return fmt.Errorf("failed to accept invitation: %w", err)
	}

	return nil
}

func NewService(
	s StorageInterface,
	tx db.TxRunner,
	hasher PasswordHasherInterface,
	frontendURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     s,
		tx:          tx,
		hasher:      hasher,
		frontendURL: frontendURL,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
