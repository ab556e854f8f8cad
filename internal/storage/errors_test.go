// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapWriteError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: pgErrCodeUniqueViolation}, expected: ErrDuplicateKey},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgErrCodeUniqueViolation}), expected: ErrDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}, expected: ErrForeignKeyViolation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := mapWriteError(tc.err, "membership"); !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}

	other := errors.New("connection reset")
	err := mapWriteError(other, "membership")
	if !errors.Is(err, other) || errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected wrapped original error, got %v", err)
	}
}

func TestMapReadError(t *testing.T) {
	for _, e := range []error{sql.ErrNoRows, pgx.ErrNoRows} {
		if err := mapReadError(e, "user"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound for %v, got %v", e, err)
		}
	}

	other := errors.New("boom")
	if err := mapReadError(other, "user"); errors.Is(err, ErrNotFound) || !errors.Is(err, other) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestExpectAffected(t *testing.T) {
	if err := expectAffected(fakeResult{rows: 1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := expectAffected(fakeResult{rows: 0}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	resErr := errors.New("driver")
	if err := expectAffected(fakeResult{err: resErr}); !errors.Is(err, resErr) {
		t.Errorf("expected driver error, got %v", err)
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	if !IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}) {
		t.Error("expected 23505 to be a duplicate key error")
	}
	if IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}) {
		t.Error("did not expect 23503 to be a duplicate key error")
	}
	if IsDuplicateKeyError(errors.New("plain")) {
		t.Error("did not expect a plain error to be a duplicate key error")
	}
}
