// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"strings"

	"github.com/canonical/team-service/internal/types"
)

const (
	CAN_MANAGE_USERS_PERMISSION    = "manage_users"
	CAN_MANAGE_PROJECTS_PERMISSION = "manage_projects"
)

var moderatorRoles = []string{types.RoleCaptain, types.RoleViceCaptain}

// IsModeratorRole compares role labels case-insensitively.
func IsModeratorRole(label string) bool {
	for _, r := range moderatorRoles {
		if strings.EqualFold(strings.TrimSpace(label), r) {
			return true
		}
	}
	return false
}

// CanManageUsers is the single predicate deciding whether a member may manage
// the users of a team: either a moderator role or the manage-users flag.
func CanManageUsers(roles []*types.Role, membership *types.UserTeam) bool {
	if membership != nil && membership.HasPermissionManageUsers {
		return true
	}
	for _, r := range roles {
		if r != nil && IsModeratorRole(r.Role) {
			return true
		}
	}
	return false
}
