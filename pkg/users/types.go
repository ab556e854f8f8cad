// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"github.com/canonical/team-service/internal/types"
	"github.com/canonical/team-service/pkg/authentication"
)

// UpdateMeRequest only touches the fields present in the body.
// A present roles list replaces the caller's roles in the selected team.
type UpdateMeRequest struct {
	FirstName     *string   `json:"first_name,omitempty" validate:"omitempty,min=1,max=150"`
	LastName      *string   `json:"last_name,omitempty" validate:"omitempty,min=1,max=150"`
	BirthDate     *string   `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone         *string   `json:"phone,omitempty" validate:"omitempty,max=32"`
	Faculty       *string   `json:"faculty,omitempty" validate:"omitempty,max=255"`
	ClothesSize   *string   `json:"clothes_size,omitempty" validate:"omitempty,max=8"`
	City          *string   `json:"city,omitempty" validate:"omitempty,max=255"`
	AdmissionYear *int      `json:"admission_year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	TelegramNick  *string   `json:"telegram_nick,omitempty" validate:"omitempty,max=64"`
	Roles         *[]string `json:"roles,omitempty"`
}

type MeResponse struct {
	Auth *authentication.AuthPayload `json:"auth,omitempty"`
	User *types.User                 `json:"user"`
}
