// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"

	"github.com/canonical/team-service/internal/types"
)

type ServiceInterface interface {
	ListTeams(ctx context.Context) ([]*types.Team, error)
	GetTeam(ctx context.Context, id string) (*types.Team, error)
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*types.Team, error)
}

type StorageInterface interface {
	CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error)
	GetTeamByID(ctx context.Context, id string) (*types.Team, error)
	ListTeams(ctx context.Context) ([]*types.Team, error)
}
