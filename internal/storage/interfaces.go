// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/team-service/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u *types.User, paths []string) error
	ListUsersByTeamID(ctx context.Context, teamID string, offset, limit uint64) ([]*types.User, error)
	CountUsersByTeamID(ctx context.Context, teamID string) (int64, error)

	CreateToken(ctx context.Context, userID, tokenHash string) (*types.AuthToken, error)
	LockUserForUpdate(ctx context.Context, userID string) error
	RevokeTokensByUserID(ctx context.Context, userID string) (int64, error)
	GetLiveTokenByHash(ctx context.Context, tokenHash string) (*types.AuthToken, error)

	CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error)
	GetTeamByID(ctx context.Context, id string) (*types.Team, error)
	ListTeams(ctx context.Context) ([]*types.Team, error)

	GetLiveMembership(ctx context.Context, userID, teamID string) (*types.UserTeam, error)
	CreateMembership(ctx context.Context, membership *types.UserTeam) (*types.UserTeam, error)
	SoftDeleteMembership(ctx context.Context, userID, teamID string) error
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.UserTeam, error)

	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	ListRoles(ctx context.Context, userID, teamID string) ([]*types.Role, error)
	SoftDeleteRoles(ctx context.Context, userID, teamID string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	ListInvitationsByTeamID(ctx context.Context, teamID string) ([]*types.Invitation, error)
	TransitionInvitation(ctx context.Context, id string, to types.InvitationStatus, from ...types.InvitationStatus) error
}
