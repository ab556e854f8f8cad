// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

func TestAPI_Token(t *testing.T) {
	user := &types.User{ID: "user-1", Email: "jane@example.com"}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validate       func(*testing.T, map[string]any)
	}{
		{
			name:           "invalid body",
			body:           `{"email":"not-an-email","password":"x"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "user not found",
			body: `{"email":"nobody@example.com","password":"x"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignIn(gomock.Any(), "nobody@example.com", "x").Return(nil, ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "wrong password",
			body: `{"email":"jane@example.com","password":"x"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignIn(gomock.Any(), "jane@example.com", "x").Return(nil, ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "inactive",
			body: `{"email":"jane@example.com","password":"x"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignIn(gomock.Any(), "jane@example.com", "x").Return(nil, ErrUserInactive)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "unexpected error",
			body: `{"email":"jane@example.com","password":"x"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignIn(gomock.Any(), "jane@example.com", "x").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "success",
			body: `{"email":"jane@example.com","password":"secret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignIn(gomock.Any(), "jane@example.com", "secret").Return(
					&types.AuthResult{Token: "tok", CreatedAt: time.Now(), User: user}, nil,
				)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				data := body["data"].(map[string]any)
				auth := data["auth"].(map[string]any)
				if auth["token"] != "tok" {
					t.Errorf("expected token in response, got %v", auth)
				}
				if data["user"].(map[string]any)["id"] != "user-1" {
					t.Errorf("expected user in response, got %v", data["user"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			var body map[string]any
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body["status"] != float64(tt.expectedStatus) {
				t.Errorf("expected envelope status %d, got %v", tt.expectedStatus, body["status"])
			}
			if tt.validate != nil {
				tt.validate(t, body)
			}
		})
	}
}
