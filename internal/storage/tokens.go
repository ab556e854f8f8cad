// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/team-service/internal/types"
)

func (s *Storage) CreateToken(ctx context.Context, userID, tokenHash string) (*types.AuthToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateToken")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var t types.AuthToken
	err = s.db.Statement(ctx).
		Insert("auth_tokens").
		Columns("id", "user_id", "token_hash").
		Values(id, userID, tokenHash).
		Suffix("RETURNING id, user_id, token_hash, created_at").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.CreatedAt)

	if err != nil {
		return nil, mapWriteError(err, "auth token")
	}

	return &t, nil
}

// LockUserForUpdate takes a row lock on the live user until the surrounding
// transaction ends. Concurrent sign-ins of the same user queue behind it.
func (s *Storage) LockUserForUpdate(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockUserForUpdate")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select("id").
		From("users").
		Where(sq.Eq{"id": userID, "deleted_at": nil}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		return mapReadError(err, "user")
	}

	return nil
}

// RevokeTokensByUserID marks every live token of the user as deleted.
func (s *Storage) RevokeTokensByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeTokensByUserID")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("auth_tokens").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to revoke tokens: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}

func (s *Storage) GetLiveTokenByHash(ctx context.Context, tokenHash string) (*types.AuthToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLiveTokenByHash")
	defer span.End()

	var t types.AuthToken
	err := s.db.Statement(ctx).
		Select("id", "user_id", "token_hash", "created_at").
		From("auth_tokens").
		Where(sq.Eq{"token_hash": tokenHash, "deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.CreatedAt)

	if err != nil {
		return nil, mapReadError(err, "auth token")
	}

	return &t, nil
}
