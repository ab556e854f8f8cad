// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"github.com/canonical/team-service/internal/types"
)

type CreateInvitationRequest struct {
	Email                       string `json:"email" validate:"required,email"`
	SingleUse                   *bool  `json:"single_use,omitempty"`
	IsCaptain                   bool   `json:"is_captain"`
	HasPermissionManageUsers    bool   `json:"has_permission_manage_users"`
	HasPermissionManageProjects bool   `json:"has_permission_manage_projects"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,max=72"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type CreateInvitationResponse struct {
	Invitation *types.Invitation `json:"invitation"`
	InviteURL  string            `json:"invite_url"`
}

type CheckUserResponse struct {
	UserExists bool   `json:"user_exists"`
	Email      string `json:"email"`
}
