// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/team-service/internal/types"
)

var teamColumns = []string{
	"id", "name", "educational_institution_type", "city_id", "university_id", "created_at", "updated_at",
}

func scanTeam(row sq.RowScanner) (*types.Team, error) {
	t := new(types.Team)
	if err := row.Scan(&t.ID, &t.Name, &t.EducationalInstitutionType, &t.CityID, &t.UniversityID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeam")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("teams").
		Columns("id", "name", "educational_institution_type", "city_id", "university_id").
		Values(id, t.Name, t.EducationalInstitutionType, t.CityID, t.UniversityID).
		Suffix("RETURNING " + joinColumns(teamColumns)).
		QueryRowContext(ctx)

	created, err := scanTeam(row)
	if err != nil {
		return nil, mapWriteError(err, "team")
	}

	return created, nil
}

func (s *Storage) GetTeamByID(ctx context.Context, id string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(teamColumns...).
		From("teams").
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		QueryRowContext(ctx)

	t, err := scanTeam(row)
	if err != nil {
		return nil, mapReadError(err, "team")
	}

	return t, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeams")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(teamColumns...).
		From("teams").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*types.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return teams, nil
}
