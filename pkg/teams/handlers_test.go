// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

func TestAPI(t *testing.T) {
	const teamUUID = "0190a0f4-7c1e-7b5e-9a11-0000000000aa"

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/teams",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListTeams(gomock.Any()).Return([]*types.Team{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/teams/" + teamUUID,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTeam(gomock.Any(), teamUUID).Return(&types.Team{ID: teamUUID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/teams/" + teamUUID,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTeam(gomock.Any(), teamUUID).Return(nil, ErrTeamNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "get malformed id",
			method:         http.MethodGet,
			path:           "/teams/abc",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/teams",
			body:   `{"name":"Rockets","educational_institution_type":"school","city_id":"city-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(&types.Team{ID: teamUUID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "create with any institution type",
			method: http.MethodPost,
			path:   "/teams",
			body:   `{"name":"Rockets","educational_institution_type":"guild","city_id":"city-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(&types.Team{ID: teamUUID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create without institution type",
			method:         http.MethodPost,
			path:           "/teams",
			body:           `{"name":"Rockets","city_id":"city-1"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create fails",
			method: http.MethodPost,
			path:   "/teams",
			body:   `{"name":"Rockets","educational_institution_type":"school","city_id":"city-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
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

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
