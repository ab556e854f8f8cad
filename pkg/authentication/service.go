// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/team-service/internal/db"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      db.TxRunner
	hasher  PasswordHasherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SignIn checks the credentials and issues a new bearer token. Every token the
// user held before is revoked in the same transaction, so only the newest one validates.
func (s *Service) SignIn(ctx context.Context, email, password string) (*types.AuthResult, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.SignIn")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.fail(email, "not_found")
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		s.fail(user.ID, "inactive")
		return nil, ErrUserInactive
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.fail(user.ID, "invalid_credentials")
		return nil, ErrInvalidCredentials
	}

	raw, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	var token *types.AuthToken
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		// without the lock two concurrent sign-ins would not see each other's token
		if err := s.storage.LockUserForUpdate(ctx, user.ID); err != nil {
			return err
		}

		revoked, err := s.storage.RevokeTokensByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if revoked > 0 {
			s.logger.Security().TokenRevoked(user.ID)
		}

		token, err = s.storage.CreateToken(ctx, user.ID, HashToken(raw))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Security().AuthnSuccess(user.ID)
	signInCounter.WithLabelValues("success").Inc()

	return &types.AuthResult{Token: raw, CreatedAt: token.CreatedAt, User: user}, nil
}

func (s *Service) fail(subject, reason string) {
	s.logger.Security().AuthnFailure(subject, reason)
	signInCounter.WithLabelValues(reason).Inc()
}

// ValidateToken resolves a raw bearer token to its owner. Unknown, revoked or
// orphaned tokens yield nil, nil.
func (s *Service) ValidateToken(ctx context.Context, token string) (*types.TokenData, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.ValidateToken")
	defer span.End()

	if token == "" {
		return nil, nil
	}

	t, err := s.storage.GetLiveTokenByHash(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	user, err := s.storage.GetUserByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up token owner: %w", err)
	}

	if !user.IsActive {
		return nil, nil
	}

	return &types.TokenData{Token: token, CreatedAt: t.CreatedAt, User: user}, nil
}

func NewService(s StorageInterface, tx db.TxRunner, hasher PasswordHasherInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	svc := new(Service)

	svc.storage = s
	svc.tx = tx
	svc.hasher = hasher

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
