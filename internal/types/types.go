// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type InvitationStatus string

const (
	InvitationStatusPending   InvitationStatus = "pending"
	InvitationStatusAccepted  InvitationStatus = "accepted"
	InvitationStatusCancelled InvitationStatus = "cancelled"
)

const (
	RoleCaptain         = "captain"
	RoleViceCaptain     = "vice-captain"
	RoleDeveloper       = "developer"
	RoleDesigner        = "designer"
	RolePM              = "pm"
	RolePR              = "pr"
	RoleHR              = "hr"
	RoleBusinessAdviser = "business-adviser"
	RoleAcademicAdviser = "academic-adviser"
	RoleMarketer        = "marketer"
	RoleEventManager    = "event-manager"
)

type User struct {
	ID            string     `db:"id" json:"id"`
	Email         string     `db:"email" json:"email"`
	PasswordHash  string     `db:"password" json:"-"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	BirthDate     *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Phone         *string    `db:"phone" json:"phone,omitempty"`
	Faculty       *string    `db:"faculty" json:"faculty,omitempty"`
	ClothesSize   *string    `db:"clothes_size" json:"clothes_size,omitempty"`
	City          *string    `db:"city" json:"city,omitempty"`
	AdmissionYear *int       `db:"admission_year" json:"admission_year,omitempty"`
	TelegramNick  *string    `db:"telegram_nick" json:"telegram_nick,omitempty"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at" json:"-"`

	Roles []*Role     `db:"-" json:"roles,omitempty"`
	Teams []*UserTeam `db:"-" json:"user_teams,omitempty"`
}

// AuthToken is a persisted bearer token. Only the hash of the token is stored.
type AuthToken struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type Team struct {
	ID                         string     `db:"id" json:"id"`
	Name                       string     `db:"name" json:"name"`
	EducationalInstitutionType string     `db:"educational_institution_type" json:"educational_institution_type"`
	CityID                     string     `db:"city_id" json:"city_id"`
	UniversityID               *string    `db:"university_id" json:"university_id"`
	CreatedAt                  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt                  time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt                  *time.Time `db:"deleted_at" json:"-"`
}

// UserTeam is the membership of a user in a team.
type UserTeam struct {
	ID                          string     `db:"id" json:"id"`
	UserID                      string     `db:"user_id" json:"user_id"`
	TeamID                      string     `db:"team_id" json:"team_id"`
	HasPermissionManageUsers    bool       `db:"has_permission_manage_users" json:"has_permission_manage_users"`
	HasPermissionManageProjects bool       `db:"has_permission_manage_projects" json:"has_permission_manage_projects"`
	CreatedAt                   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt                   time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt                   *time.Time `db:"deleted_at" json:"-"`
}

type Role struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"user_id"`
	TeamID    *string    `db:"team_id" json:"team_id"`
	Role      string     `db:"role" json:"role"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

type Invitation struct {
	ID                          string           `db:"id" json:"id"`
	Token                       string           `db:"token" json:"token"`
	TeamID                      string           `db:"team_id" json:"team_id"`
	Email                       string           `db:"email" json:"email"`
	CreatedBy                   string           `db:"created_by" json:"created_by"`
	SingleUse                   bool             `db:"single_use" json:"single_use"`
	IsCaptain                   bool             `db:"is_captain" json:"is_captain"`
	HasPermissionManageUsers    bool             `db:"has_permission_manage_users" json:"has_permission_manage_users"`
	HasPermissionManageProjects bool             `db:"has_permission_manage_projects" json:"has_permission_manage_projects"`
	Status                      InvitationStatus `db:"status" json:"status"`
	CreatedAt                   time.Time        `db:"created_at" json:"created_at"`
}

// AuthResult is returned by a successful sign in.
type AuthResult struct {
	Token     string
	CreatedAt time.Time
	User      *User
}

// TokenData describes a live token and its owner.
type TokenData struct {
	Token     string
	CreatedAt time.Time
	User      *User
}

// PageMeta describes a page of a paginated listing.
type PageMeta struct {
	CurrentPage int64 `json:"current_page"`
	TotalPages  int64 `json:"total_pages"`
	PerPage     int64 `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
}
