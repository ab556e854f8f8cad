// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/team-service/internal/types"
)

var invitationColumns = []string{
	"id", "token", "team_id", "email", "created_by", "single_use", "is_captain",
	"has_permission_manage_users", "has_permission_manage_projects", "status", "created_at",
}

func scanInvitation(row sq.RowScanner) (*types.Invitation, error) {
	i := new(types.Invitation)
	err := row.Scan(
		&i.ID, &i.Token, &i.TeamID, &i.Email, &i.CreatedBy, &i.SingleUse, &i.IsCaptain,
		&i.HasPermissionManageUsers, &i.HasPermissionManageProjects, &i.Status, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("invitations").
		Columns(
			"id", "token", "team_id", "email", "created_by", "single_use", "is_captain",
			"has_permission_manage_users", "has_permission_manage_projects", "status",
		).
		Values(
			id, inv.Token, inv.TeamID, inv.Email, inv.CreatedBy, inv.SingleUse, inv.IsCaptain,
			inv.HasPermissionManageUsers, inv.HasPermissionManageProjects, string(types.InvitationStatusPending),
		).
		Suffix("RETURNING " + joinColumns(invitationColumns)).
		QueryRowContext(ctx)

	created, err := scanInvitation(row)
	if err != nil {
		return nil, mapWriteError(err, "invitation")
	}

	return created, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"token": token})
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"id": id})
}

func (s *Storage) getInvitation(ctx context.Context, where sq.Eq) (*types.Invitation, error) {
	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(where).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		return nil, mapReadError(err, "invitation")
	}

	return inv, nil
}

// ListInvitationsByTeamID returns the invitations of a team, newest first.
func (s *Storage) ListInvitationsByTeamID(ctx context.Context, teamID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByTeamID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("created_at DESC", "id DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := make([]*types.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// TransitionInvitation moves the invitation to status `to` only while its current
// status is one of `from`. ErrNotFound means no row was in an allowed state.
func (s *Storage) TransitionInvitation(ctx context.Context, id string, to types.InvitationStatus, from ...types.InvitationStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionInvitation")
	defer span.End()

	allowed := make([]string, 0, len(from))
	for _, f := range from {
		allowed = append(allowed, string(f))
	}

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", string(to)).
		Where(sq.Eq{"id": id, "status": allowed}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update invitation status: %w", err)
	}

	return expectAffected(res)
}
