// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"

	"github.com/canonical/team-service/internal/types"
)

type ServiceInterface interface {
	CreateInvitation(ctx context.Context, teamID, createdBy string, req *CreateInvitationRequest) (*types.Invitation, string, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetInvitationByTokenWithoutStatusCheck(ctx context.Context, token string) (*types.Invitation, error)
	CheckUserExists(ctx context.Context, email string) (bool, error)
	AcceptInvitation(ctx context.Context, token string) error
	RegisterUserByInvitation(ctx context.Context, token string, req *RegisterRequest) (*types.User, error)
	CancelInvitation(ctx context.Context, id string) error
	ListTeamInvitations(ctx context.Context, teamID string) ([]*types.Invitation, error)
}

type StorageInterface interface {
	GetTeamByID(ctx context.Context, id string) (*types.Team, error)
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	ListInvitationsByTeamID(ctx context.Context, teamID string) ([]*types.Invitation, error)
	TransitionInvitation(ctx context.Context, id string, to types.InvitationStatus, from ...types.InvitationStatus) error
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetLiveMembership(ctx context.Context, userID, teamID string) (*types.UserTeam, error)
	CreateMembership(ctx context.Context, membership *types.UserTeam) (*types.UserTeam, error)
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
}

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
}
