// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/team-service/internal/authorization"
	"github.com/canonical/team-service/internal/db"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

var knownRoles = map[string]struct{}{
	types.RoleCaptain:         {},
	types.RoleViceCaptain:     {},
	types.RoleDeveloper:       {},
	types.RoleDesigner:        {},
	types.RolePM:              {},
	types.RolePR:              {},
	types.RoleHR:              {},
	types.RoleBusinessAdviser: {},
	types.RoleAcademicAdviser: {},
	types.RoleMarketer:        {},
	types.RoleEventManager:    {},
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	authorizer authorization.AuthorizerInterface
	tx         db.TxRunner

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetMe reloads the caller so that roles and memberships are current.
func (s *Service) GetMe(ctx context.Context, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetMe")
	defer span.End()

	return s.GetUser(ctx, user.ID)
}

func (s *Service) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetUser")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.loadRelations(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) loadRelations(ctx context.Context, user *types.User) error {
	roles, err := s.storage.ListRoles(ctx, user.ID, "")
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	teams, err := s.storage.ListMembershipsByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	user.Roles = roles
	user.Teams = teams
	return nil
}

// ListTeamUsers pages through the live members of a team. Without a team
// there is nothing to list, which is answered with an empty page.
func (s *Service) ListTeamUsers(ctx context.Context, teamID string, page, size int64) ([]*types.User, *types.PageMeta, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListTeamUsers")
	defer span.End()

	if teamID == "" {
		return []*types.User{}, &types.PageMeta{}, nil
	}

	pageSize := db.PageSize(size)
	if page <= 0 {
		page = 1
	}

	total, err := s.storage.CountUsersByTeamID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}

	users, err := s.storage.ListUsersByTeamID(ctx, teamID, db.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, nil, err
	}

	perPage := int64(pageSize)
	meta := &types.PageMeta{
		CurrentPage: page,
		TotalPages:  (total + perPage - 1) / perPage,
		PerPage:     perPage,
		TotalItems:  total,
	}

	return users, meta, nil
}

// UpdateMe applies the profile fields present in req and, when a non-empty
// roles list is given, replaces the caller's live roles in teamID.
func (s *Service) UpdateMe(ctx context.Context, user *types.User, teamID string, req *UpdateMeRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.UpdateMe")
	defer span.End()

	patch, paths, err := applyUpdate(user, req)
	if err != nil {
		return nil, err
	}

	// an empty roles list leaves the current roles alone
	replaceRoles := req.Roles != nil && len(*req.Roles) > 0

	var labels []string
	if replaceRoles {
		if labels, err = normalizeRoles(*req.Roles); err != nil {
			return nil, err
		}
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if len(paths) > 0 {
			if err := s.storage.UpdateUser(ctx, patch, paths); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return ErrUserNotFound
				}
				return err
			}
		}

		if !replaceRoles {
			return nil
		}

		if _, err := s.storage.GetLiveMembership(ctx, user.ID, teamID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return authorization.ErrNotATeamMember
			}
			return err
		}

		if err := s.storage.SoftDeleteRoles(ctx, user.ID, teamID); err != nil {
			return err
		}

		for _, label := range labels {
			if _, err := s.storage.CreateRole(ctx, &types.Role{UserID: user.ID, TeamID: &teamID, Role: label}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(ctx, user.ID)
}

func applyUpdate(user *types.User, req *UpdateMeRequest) (*types.User, []string, error) {
	patch := *user
	paths := make([]string, 0)

	if req.FirstName != nil {
		patch.FirstName = *req.FirstName
		paths = append(paths, "first_name")
	}
	if req.LastName != nil {
		patch.LastName = *req.LastName
		paths = append(paths, "last_name")
	}
	if req.BirthDate != nil {
		d, err := time.Parse(time.DateOnly, *req.BirthDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid birth_date: %w", err)
		}
		patch.BirthDate = &d
		paths = append(paths, "birth_date")
	}
	if req.Phone != nil {
		patch.Phone = req.Phone
		paths = append(paths, "phone")
	}
	if req.Faculty != nil {
		patch.Faculty = req.Faculty
		paths = append(paths, "faculty")
	}
	if req.ClothesSize != nil {
		patch.ClothesSize = req.ClothesSize
		paths = append(paths, "clothes_size")
	}
	if req.City != nil {
		patch.City = req.City
		paths = append(paths, "city")
	}
	if req.AdmissionYear != nil {
		patch.AdmissionYear = req.AdmissionYear
		paths = append(paths, "admission_year")
	}
	if req.TelegramNick != nil {
		patch.TelegramNick = req.TelegramNick
		paths = append(paths, "telegram_nick")
	}

	return &patch, paths, nil
}

// normalizeRoles lowercases the labels and drops duplicates.
func normalizeRoles(roles []string) ([]string, error) {
	seen := make(map[string]struct{}, len(roles))
	labels := make([]string, 0, len(roles))

	for _, r := range roles {
		label := strings.ToLower(strings.TrimSpace(r))
		if _, ok := knownRoles[label]; !ok {
			return nil, &UnknownRoleError{Role: r}
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	return labels, nil
}

// DeleteUser removes userID from teamID on behalf of actingUser, who must be
// allowed to manage the team's users.
func (s *Service) DeleteUser(ctx context.Context, userID, teamID string, actingUser *types.User) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.DeleteUser")
	defer span.End()

	if err := s.authorizer.CheckManageUsers(ctx, actingUser.ID, teamID); err != nil {
		return err
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.SoftDeleteMembership(ctx, userID, teamID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		return s.storage.SoftDeleteRoles(ctx, userID, teamID)
	})
	if err != nil {
		return err
	}

	s.logger.Infof("user %s removed from team %s by %s", userID, teamID, actingUser.ID)
	return nil
}

func NewService(
	s StorageInterface,
	authorizer authorization.AuthorizerInterface,
	tx db.TxRunner,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	svc := new(Service)

	svc.storage = s
	svc.authorizer = authorizer
	svc.tx = tx

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
