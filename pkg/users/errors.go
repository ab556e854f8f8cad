// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")

// UnknownRoleError reports a role label outside the supported set.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q", e.Role)
}
