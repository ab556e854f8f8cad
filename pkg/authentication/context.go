// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/team-service/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var userContextKey = contextKey{}

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *types.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser retrieves the authenticated user from the context.
// Returns nil and false if no user is present.
func GetUser(ctx context.Context) (*types.User, bool) {
	u, ok := ctx.Value(userContextKey).(*types.User)
	return u, ok && u != nil
}

type tokenContextKey struct{}

// WithTokenData stores the validated token alongside its owner.
func WithTokenData(ctx context.Context, data *types.TokenData) context.Context {
	ctx = context.WithValue(ctx, tokenContextKey{}, data)
	return WithUser(ctx, data.User)
}

func GetTokenData(ctx context.Context) (*types.TokenData, bool) {
	d, ok := ctx.Value(tokenContextKey{}).(*types.TokenData)
	return d, ok && d != nil
}
