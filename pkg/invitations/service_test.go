// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go

var _ StorageInterface = (*MockStorageInterface)(nil)

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newMockedService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockPasswordHasherInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockHasher := NewMockPasswordHasherInterface(ctrl)
	logger := logging.NewNoopLogger()

	s := NewService(mockStorage, passthroughTx{}, mockHasher, "http://localhost:5173", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	return s, mockStorage, mockHasher
}

func TestService_CreateInvitation(t *testing.T) {
	dbErr := errors.New("db error")
	singleUse := false

	testCases := []struct {
		name        string
		req         *CreateInvitationRequest
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "team not found",
			req:  &CreateInvitationRequest{Email: "a@example.com"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrTeamNotFound,
		},
		{
			name: "insert fails",
			req:  &CreateInvitationRequest{Email: "a@example.com"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(&types.Team{ID: "team-1"}, nil)
				s.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name: "success keeps explicit single use",
			req:  &CreateInvitationRequest{Email: " a@example.com ", SingleUse: &singleUse, HasPermissionManageUsers: true},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(&types.Team{ID: "team-1"}, nil)
				s.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Email != "a@example.com" || inv.SingleUse || !inv.HasPermissionManageUsers || inv.CreatedBy != "user-1" {
							t.Errorf("unexpected invitation %+v", inv)
						}
						if len(inv.Token) != 36 {
							t.Errorf("expected a uuid token, got %q", inv.Token)
						}
						c := *inv
						c.ID = "inv-1"
						c.Status = types.InvitationStatusPending
						return &c, nil
					},
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newMockedService(ctrl)
			tc.setupMocks(mockStorage)

			inv, url, err := s.CreateInvitation(context.Background(), "team-1", "user-1", tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if url != "http://localhost:5173/invite/"+inv.Token {
				t.Errorf("unexpected url %q", url)
			}
		})
	}
}

func TestService_GetInvitationByToken(t *testing.T) {
	testCases := []struct {
		name        string
		stored      *types.Invitation
		storeErr    error
		expectedErr error
		message     string
	}{
		{name: "not found", storeErr: storage.ErrNotFound, expectedErr: ErrInvitationNotFound},
		{name: "accepted", stored: &types.Invitation{Status: types.InvitationStatusAccepted}, expectedErr: ErrInvitationInvalid, message: "invitation is accepted"},
		{name: "cancelled", stored: &types.Invitation{Status: types.InvitationStatusCancelled}, expectedErr: ErrInvitationInvalid, message: "invitation is cancelled"},
		{name: "pending", stored: &types.Invitation{Status: types.InvitationStatusPending}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newMockedService(ctrl)
			mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(tc.stored, tc.storeErr)

			inv, err := s.GetInvitationByToken(context.Background(), "tok")

			if tc.expectedErr == nil {
				if err != nil || inv != tc.stored {
					t.Errorf("unexpected result %v, %v", inv, err)
				}
				return
			}
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
			if tc.message != "" && err.Error() != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, err.Error())
			}
		})
	}
}

func TestService_AcceptInvitation(t *testing.T) {
	pending := &types.Invitation{ID: "inv-1", Token: "tok", TeamID: "team-1", Email: "a@example.com", Status: types.InvitationStatusPending}
	captain := &types.Invitation{ID: "inv-2", Token: "tok", TeamID: "team-1", Email: "a@example.com", Status: types.InvitationStatusPending, IsCaptain: true}
	user := &types.User{ID: "user-1", Email: "a@example.com"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "lost the race on the status update",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(pending, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "a@example.com").Return(user, nil)
				s.EXPECT().GetLiveMembership(gomock.Any(), "user-1", "team-1").Return(&types.UserTeam{}, nil)
				s.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationStatusAccepted, types.InvitationStatusPending).Return(storage.ErrNotFound)
			},
			expectedErr: ErrInvitationInvalid,
		},
		{
			name: "concurrent membership insert is a no-op",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(captain, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "a@example.com").Return(user, nil)
				s.EXPECT().GetLiveMembership(gomock.Any(), "user-1", "team-1").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				s.EXPECT().TransitionInvitation(gomock.Any(), "inv-2", types.InvitationStatusAccepted, types.InvitationStatusPending).Return(nil)
			},
		},
		{
			name: "captain gets flags and role",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(captain, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "a@example.com").Return(user, nil)
				s.EXPECT().GetLiveMembership(gomock.Any(), "user-1", "team-1").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.UserTeam) (*types.UserTeam, error) {
						if !m.HasPermissionManageUsers || !m.HasPermissionManageProjects {
							t.Errorf("expected both flags for a captain, got %+v", m)
						}
						return m, nil
					},
				)
				s.EXPECT().CreateRole(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.Role) (*types.Role, error) {
						if r.Role != "Captain" || r.TeamID == nil || *r.TeamID != "team-1" {
							t.Errorf("unexpected role %+v", r)
						}
						return r, nil
					},
				)
				s.EXPECT().TransitionInvitation(gomock.Any(), "inv-2", types.InvitationStatusAccepted, types.InvitationStatusPending).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newMockedService(ctrl)
			tc.setupMocks(mockStorage)

			err := s.AcceptInvitation(context.Background(), "tok")
			if tc.expectedErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_RegisterUserByInvitation(t *testing.T) {
	pending := &types.Invitation{ID: "inv-1", Token: "tok", TeamID: "team-1", Email: "a@example.com", Status: types.InvitationStatusPending}
	req := &RegisterRequest{Email: "A@example.com", Password: "pw", FirstName: "A", LastName: "B"}

	testCases := []struct {
		name        string
		req         *RegisterRequest
		setupMocks  func(*MockStorageInterface, *MockPasswordHasherInterface)
		expectedErr error
	}{
		{
			name: "email mismatch",
			req:  &RegisterRequest{Email: "other@example.com", Password: "pw", FirstName: "A", LastName: "B"},
			setupMocks: func(s *MockStorageInterface, h *MockPasswordHasherInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(pending, nil)
			},
			expectedErr: ErrInvitationEmailMismatch,
		},
		{
			name: "password longer than bcrypt accepts",
			req:  &RegisterRequest{Email: "a@example.com", Password: strings.Repeat("é", 40), FirstName: "A", LastName: "B"},
			setupMocks: func(s *MockStorageInterface, h *MockPasswordHasherInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(pending, nil)
			},
			expectedErr: ErrPasswordTooLong,
		},
		{
			name: "user already exists",
			req:  req,
			setupMocks: func(s *MockStorageInterface, h *MockPasswordHasherInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(pending, nil)
				s.EXPECT().UserExistsByEmail(gomock.Any(), "A@example.com").Return(true, nil)
			},
			expectedErr: ErrEmailAlreadyExists,
		},
		{
			name: "unique violation on insert",
			req:  req,
			setupMocks: func(s *MockStorageInterface, h *MockPasswordHasherInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(pending, nil)
				s.EXPECT().UserExistsByEmail(gomock.Any(), "A@example.com").Return(false, nil)
				h.EXPECT().Hash("pw").Return("hash", nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrEmailAlreadyExists,
		},
		{
			name: "success",
			req:  req,
			setupMocks: func(s *MockStorageInterface, h *MockPasswordHasherInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(pending, nil)
				s.EXPECT().UserExistsByEmail(gomock.Any(), "A@example.com").Return(false, nil)
				h.EXPECT().Hash("pw").Return("hash", nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.PasswordHash != "hash" || !u.IsActive {
							t.Errorf("unexpected user %+v", u)
						}
						c := *u
						c.ID = "user-1"
						return &c, nil
					},
				)
				s.EXPECT().GetLiveMembership(gomock.Any(), "user-1", "team-1").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(&types.UserTeam{}, nil)
				s.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationStatusAccepted, types.InvitationStatusPending).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockHasher := newMockedService(ctrl)
			tc.setupMocks(mockStorage, mockHasher)

			user, err := s.RegisterUserByInvitation(context.Background(), "tok", tc.req)
			if tc.expectedErr == nil {
				if err != nil || user == nil || user.ID != "user-1" {
					t.Errorf("unexpected result %v, %v", user, err)
				}
				return
			}
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_CancelInvitation(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "not found",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name: "accepted",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", Status: types.InvitationStatusAccepted}, nil)
			},
			expectedErr: ErrInvitationInvalid,
		},
		{
			name: "accepted between read and update",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", Status: types.InvitationStatusPending}, nil)
				s.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationStatusCancelled, types.InvitationStatusPending, types.InvitationStatusCancelled).Return(storage.ErrNotFound)
			},
			expectedErr: ErrInvitationInvalid,
		},
		{
			name: "already cancelled",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", Status: types.InvitationStatusCancelled}, nil)
				s.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationStatusCancelled, types.InvitationStatusPending, types.InvitationStatusCancelled).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newMockedService(ctrl)
			tc.setupMocks(mockStorage)

			err := s.CancelInvitation(context.Background(), "inv-1")
			if tc.expectedErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
