// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/team-service/internal/types"
)

type ServiceInterface interface {
	SignIn(ctx context.Context, email, password string) (*types.AuthResult, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenData, error)
}

// TokenValidatorInterface is what the bearer middleware needs from the service.
type TokenValidatorInterface interface {
	ValidateToken(ctx context.Context, token string) (*types.TokenData, error)
}

type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	CreateToken(ctx context.Context, userID, tokenHash string) (*types.AuthToken, error)
	LockUserForUpdate(ctx context.Context, userID string) error
	RevokeTokensByUserID(ctx context.Context, userID string) (int64, error)
	GetLiveTokenByHash(ctx context.Context, tokenHash string) (*types.AuthToken, error)
}

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}
