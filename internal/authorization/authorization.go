// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
)

var (
	ErrNotATeamMember = errors.New("user is not a member of this team")
	ErrForbidden      = errors.New("you do not have permission to perform this action")
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CheckManageUsers returns ErrNotATeamMember when the user has no live membership
// in the team and ErrForbidden when the membership does not grant user management.
func (a *Authorizer) CheckManageUsers(ctx context.Context, userID, teamID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckManageUsers")
	defer span.End()

	membership, err := a.storage.GetLiveMembership(ctx, userID, teamID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Security().AuthzFailure(userID, "team:"+teamID)
			return ErrNotATeamMember
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}

	roles, err := a.storage.ListRoles(ctx, userID, teamID)
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	if !CanManageUsers(roles, membership) {
		a.logger.Security().AuthzFailure(userID, "team:"+teamID+":"+CAN_MANAGE_USERS_PERMISSION)
		return ErrForbidden
	}

	return nil
}

func NewAuthorizer(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.storage = s
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
