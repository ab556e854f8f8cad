// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

var ErrTeamNotFound = errors.New("team not found")

type CreateTeamRequest struct {
	Name                       string  `json:"name" validate:"required,max=255"`
	EducationalInstitutionType string  `json:"educational_institution_type" validate:"required,max=255"`
	CityID                     string  `json:"city_id" validate:"required"`
	UniversityID               *string `json:"university_id,omitempty" validate:"omitempty,min=1"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListTeams(ctx context.Context) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.ListTeams")
	defer span.End()

	return s.storage.ListTeams(ctx)
}

func (s *Service) GetTeam(ctx context.Context, id string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.GetTeam")
	defer span.End()

	team, err := s.storage.GetTeamByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	return team, nil
}

func (s *Service) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.CreateTeam")
	defer span.End()

	team, err := s.storage.CreateTeam(ctx, &types.Team{
		Name:                       strings.TrimSpace(req.Name),
		EducationalInstitutionType: req.EducationalInstitutionType,
		CityID:                     req.CityID,
		UniversityID:               req.UniversityID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("team %s created", team.ID)
	return team, nil
}

func NewService(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	svc := new(Service)

	svc.storage = s

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
