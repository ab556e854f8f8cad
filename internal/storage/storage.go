// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/team-service/internal/db"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

// mapWriteError classifies constraint violations returned by inserts and updates.
func mapWriteError(err error, what string) error {
	if IsDuplicateKeyError(err) {
		return WrapDuplicateKeyError(err, what)
	}
	if IsForeignKeyViolation(err) {
		return WrapForeignKeyError(err, what)
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

func mapReadError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// expectAffected turns an update that matched nothing into ErrNotFound.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
