// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/team-service/internal/types"
)

type AuthorizerInterface interface {
	CheckManageUsers(ctx context.Context, userID, teamID string) error
}

type StorageInterface interface {
	GetLiveMembership(ctx context.Context, userID, teamID string) (*types.UserTeam, error)
	ListRoles(ctx context.Context, userID, teamID string) ([]*types.Role, error)
}
