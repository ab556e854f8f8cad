// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/team-service/internal/types"
)

var membershipColumns = []string{
	"id", "user_id", "team_id", "has_permission_manage_users", "has_permission_manage_projects", "created_at", "updated_at",
}

func scanMembership(row sq.RowScanner) (*types.UserTeam, error) {
	m := new(types.UserTeam)
	err := row.Scan(&m.ID, &m.UserID, &m.TeamID, &m.HasPermissionManageUsers, &m.HasPermissionManageProjects, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetLiveMembership returns the membership of the user in the team that has not been removed.
func (s *Storage) GetLiveMembership(ctx context.Context, userID, teamID string) (*types.UserTeam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLiveMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("user_teams").
		Where(sq.Eq{"user_id": userID, "team_id": teamID, "deleted_at": nil}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		return nil, mapReadError(err, "membership")
	}

	return m, nil
}

// CreateMembership fails with ErrDuplicateKey when a live membership already exists.
// The conflict is resolved with DO NOTHING so an enclosing transaction stays usable.
func (s *Storage) CreateMembership(ctx context.Context, m *types.UserTeam) (*types.UserTeam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("user_teams").
		Columns("id", "user_id", "team_id", "has_permission_manage_users", "has_permission_manage_projects").
		Values(id, m.UserID, m.TeamID, m.HasPermissionManageUsers, m.HasPermissionManageProjects).
		Suffix("ON CONFLICT (user_id, team_id) WHERE deleted_at IS NULL DO NOTHING RETURNING " + joinColumns(membershipColumns)).
		QueryRowContext(ctx)

	created, err := scanMembership(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("membership: %w", ErrDuplicateKey)
	}
	if err != nil {
		return nil, mapWriteError(err, "membership")
	}

	return created, nil
}

// SoftDeleteMembership returns ErrNotFound when no live membership matched.
func (s *Storage) SoftDeleteMembership(ctx context.Context, userID, teamID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("user_teams").
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "team_id": teamID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.UserTeam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("user_teams").
		Where(sq.Eq{"user_id": userID, "deleted_at": nil}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	memberships := make([]*types.UserTeam, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}
