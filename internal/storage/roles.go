// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/team-service/internal/types"
)

func (s *Storage) CreateRole(ctx context.Context, r *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.Role
	err = s.db.Statement(ctx).
		Insert("roles").
		Columns("id", "user_id", "team_id", "role").
		Values(id, r.UserID, r.TeamID, r.Role).
		Suffix("RETURNING id, user_id, team_id, role, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.UserID, &created.TeamID, &created.Role, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, mapWriteError(err, "role")
	}

	return &created, nil
}

// ListRoles returns the live roles of a user. An empty teamID lists roles across all teams.
func (s *Storage) ListRoles(ctx context.Context, userID, teamID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoles")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "user_id", "team_id", "role", "created_at", "updated_at").
		From("roles").
		Where(sq.Eq{"user_id": userID, "deleted_at": nil})

	if teamID != "" {
		query = query.Where(sq.Eq{"team_id": teamID})
	}

	rows, err := query.OrderBy("created_at").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]*types.Role, 0)
	for rows.Next() {
		var r types.Role
		if err := rows.Scan(&r.ID, &r.UserID, &r.TeamID, &r.Role, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (s *Storage) SoftDeleteRoles(ctx context.Context, userID, teamID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteRoles")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("roles").
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "team_id": teamID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove roles: %w", err)
	}

	return nil
}
