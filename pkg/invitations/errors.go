// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"errors"

	"github.com/canonical/team-service/internal/types"
)

var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationInvalid       = errors.New("invitation is no longer pending")
	ErrInvitationEmailMismatch = errors.New("email does not match invitation")
	ErrEmailAlreadyExists      = errors.New("user already exists")
	ErrUserNotFound            = errors.New("user not found")
	ErrTeamNotFound            = errors.New("team not found")
	ErrPasswordTooLong         = errors.New("password must not exceed 72 bytes")

	// ErrUserMustRegister is returned when an invitation is accepted for an email
	// that has no account yet. It matches ErrUserNotFound with errors.Is.
	ErrUserMustRegister error = mustRegisterError{}
)

type mustRegisterError struct{}

func (mustRegisterError) Error() string { return "user must register first" }
func (mustRegisterError) Unwrap() error { return ErrUserNotFound }

// StatusError reports the terminal status that made an invitation unusable.
type StatusError struct {
	Status types.InvitationStatus
}

func (e *StatusError) Error() string { return "invitation is " + string(e.Status) }
func (e *StatusError) Unwrap() error { return ErrInvitationInvalid }
