// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/team-service/internal/types"
)

type ServiceInterface interface {
	GetMe(ctx context.Context, user *types.User) (*types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	ListTeamUsers(ctx context.Context, teamID string, page, size int64) ([]*types.User, *types.PageMeta, error)
	UpdateMe(ctx context.Context, user *types.User, teamID string, req *UpdateMeRequest) (*types.User, error)
	DeleteUser(ctx context.Context, userID, teamID string, actingUser *types.User) error
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	UpdateUser(ctx context.Context, u *types.User, paths []string) error
	ListUsersByTeamID(ctx context.Context, teamID string, offset, limit uint64) ([]*types.User, error)
	CountUsersByTeamID(ctx context.Context, teamID string) (int64, error)
	GetLiveMembership(ctx context.Context, userID, teamID string) (*types.UserTeam, error)
	SoftDeleteMembership(ctx context.Context, userID, teamID string) error
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.UserTeam, error)
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	ListRoles(ctx context.Context, userID, teamID string) ([]*types.Role, error)
	SoftDeleteRoles(ctx context.Context, userID, teamID string) error
}
