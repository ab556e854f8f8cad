// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/team-service/internal/types"
)

var userColumns = []string{
	"u.id", "u.email", "u.password", "u.first_name", "u.last_name",
	"u.birth_date", "u.phone", "u.faculty", "u.clothes_size", "u.city",
	"u.admission_year", "u.telegram_nick", "u.is_active", "u.created_at", "u.updated_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	u := new(types.User)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.BirthDate, &u.Phone, &u.Faculty, &u.ClothesSize, &u.City,
		&u.AdmissionYear, &u.TelegramNick, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users AS u").
		Columns(
			"id", "email", "password", "first_name", "last_name",
			"birth_date", "phone", "faculty", "clothes_size", "city",
			"admission_year", "telegram_nick", "is_active",
		).
		Values(
			id, u.Email, u.PasswordHash, u.FirstName, u.LastName,
			u.BirthDate, u.Phone, u.Faculty, u.ClothesSize, u.City,
			u.AdmissionYear, u.TelegramNick, u.IsActive,
		).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		return nil, mapWriteError(err, "user")
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users u").
		Where(sq.Eq{"u.id": id, "u.deleted_at": nil}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, mapReadError(err, "user")
	}

	return u, nil
}

// GetUserByEmail matches the email case-insensitively.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users u").
		Where(sq.Expr("lower(u.email) = lower(?)", email)).
		Where(sq.Eq{"u.deleted_at": nil}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, mapReadError(err, "user")
	}

	return u, nil
}

func (s *Storage) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UserExistsByEmail")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(sq.Expr("lower(email) = lower(?)", email)).
		Where(sq.Eq{"deleted_at": nil}).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// UpdateUser updates the profile fields named in paths. Unknown paths are ignored.
func (s *Storage) UpdateUser(ctx context.Context, u *types.User, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "first_name":
			updateMap[p] = u.FirstName
		case "last_name":
			updateMap[p] = u.LastName
		case "birth_date":
			updateMap[p] = u.BirthDate
		case "phone":
			updateMap[p] = u.Phone
		case "faculty":
			updateMap[p] = u.Faculty
		case "clothes_size":
			updateMap[p] = u.ClothesSize
		case "city":
			updateMap[p] = u.City
		case "admission_year":
			updateMap[p] = u.AdmissionYear
		case "telegram_nick":
			updateMap[p] = u.TelegramNick
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(updateMap).
		Where(sq.Eq{"id": u.ID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) ListUsersByTeamID(ctx context.Context, teamID string, offset, limit uint64) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByTeamID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users u").
		Join("user_teams ut ON ut.user_id = u.id").
		Where(sq.Eq{"ut.team_id": teamID, "ut.deleted_at": nil, "u.deleted_at": nil}).
		OrderBy("ut.created_at", "u.id").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list team users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) CountUsersByTeamID(ctx context.Context, teamID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUsersByTeamID")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("count(*)").
		From("users u").
		Join("user_teams ut ON ut.user_id = u.id").
		Where(sq.Eq{"ut.team_id": teamID, "ut.deleted_at": nil, "u.deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count team users: %w", err)
	}

	return count, nil
}
