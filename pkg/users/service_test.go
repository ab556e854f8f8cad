// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/team-service/internal/authorization"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_interfaces.go -source=./interfaces.go

type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func newMockedService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *passthroughTx) {
	mockStorage := NewMockStorageInterface(ctrl)
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)
	tx := new(passthroughTx)

	authorizer := authorization.NewAuthorizer(mockStorage, tracer, monitor, logger)
	return NewService(mockStorage, authorizer, tx, tracer, monitor, logger), mockStorage, tx
}

func strPtr(s string) *string { return &s }

func TestService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _ := newMockedService(ctrl)

	mockStorage.EXPECT().GetUserByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	if _, err := s.GetUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	teamID := "team-1"
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
	mockStorage.EXPECT().ListRoles(gomock.Any(), "user-1", "").Return([]*types.Role{{Role: "captain", TeamID: &teamID}}, nil)
	mockStorage.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return([]*types.UserTeam{{TeamID: teamID}}, nil)

	user, err := s.GetMe(context.Background(), &types.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(user.Roles) != 1 || len(user.Teams) != 1 {
		t.Fatalf("expected relations to be loaded, got %+v", user)
	}
}

func TestService_ListTeamUsers(t *testing.T) {
	testCases := []struct {
		name         string
		teamID       string
		page, size   int64
		setupMocks   func(*MockStorageInterface)
		expectedMeta types.PageMeta
		expectedLen  int
	}{
		{
			name:         "no team gives an empty page",
			setupMocks:   func(*MockStorageInterface) {},
			expectedMeta: types.PageMeta{},
		},
		{
			name:   "second page",
			teamID: "team-1",
			page:   2,
			size:   2,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CountUsersByTeamID(gomock.Any(), "team-1").Return(int64(3), nil)
				s.EXPECT().ListUsersByTeamID(gomock.Any(), "team-1", uint64(2), uint64(2)).Return([]*types.User{{ID: "u3"}}, nil)
			},
			expectedMeta: types.PageMeta{CurrentPage: 2, TotalPages: 2, PerPage: 2, TotalItems: 3},
			expectedLen:  1,
		},
		{
			name:   "defaults",
			teamID: "team-1",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CountUsersByTeamID(gomock.Any(), "team-1").Return(int64(0), nil)
				s.EXPECT().ListUsersByTeamID(gomock.Any(), "team-1", uint64(0), uint64(100)).Return([]*types.User{}, nil)
			},
			expectedMeta: types.PageMeta{CurrentPage: 1, TotalPages: 0, PerPage: 100, TotalItems: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newMockedService(ctrl)
			tc.setupMocks(mockStorage)

			users, meta, err := s.ListTeamUsers(context.Background(), tc.teamID, tc.page, tc.size)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if users == nil || len(users) != tc.expectedLen {
				t.Fatalf("expected %d users, got %v", tc.expectedLen, users)
			}
			if *meta != tc.expectedMeta {
				t.Fatalf("expected meta %+v, got %+v", tc.expectedMeta, *meta)
			}
		})
	}
}

func TestService_UpdateMe(t *testing.T) {
	me := &types.User{ID: "user-1", FirstName: "Old", LastName: "Name"}

	t.Run("only present fields are written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, tx := newMockedService(ctrl)

		mockStorage.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), []string{"first_name", "city"}).DoAndReturn(
			func(_ context.Context, u *types.User, _ []string) error {
				if u.FirstName != "New" || u.LastName != "Name" || u.City == nil || *u.City != "Kazan" {
					t.Errorf("unexpected patch %+v", u)
				}
				return nil
			},
		)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", FirstName: "New"}, nil)
		mockStorage.EXPECT().ListRoles(gomock.Any(), "user-1", "").Return(nil, nil)
		mockStorage.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(nil, nil)

		user, err := s.UpdateMe(context.Background(), me, "team-1", &UpdateMeRequest{FirstName: strPtr("New"), City: strPtr("Kazan")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.FirstName != "New" {
			t.Fatalf("expected reloaded user, got %+v", user)
		}
		if tx.calls != 1 {
			t.Fatalf("expected one transaction, got %d", tx.calls)
		}
		if me.FirstName != "Old" {
			t.Fatal("caller's user must not be mutated")
		}
	})

	t.Run("roles are replaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, _ := newMockedService(ctrl)
		roles := []string{"Developer", "designer", "developer"}

		created := make([]string, 0)
		gomock.InOrder(
			mockStorage.EXPECT().GetLiveMembership(gomock.Any(), "user-1", "team-1").Return(&types.UserTeam{}, nil),
			mockStorage.EXPECT().SoftDeleteRoles(gomock.Any(), "user-1", "team-1").Return(nil),
			mockStorage.EXPECT().CreateRole(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
				func(_ context.Context, r *types.Role) (*types.Role, error) {
					if r.TeamID == nil || *r.TeamID != "team-1" {
						t.Errorf("role must be scoped to the team, got %+v", r)
					}
					created = append(created, r.Role)
					return r, nil
				},
			),
		)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
		mockStorage.EXPECT().ListRoles(gomock.Any(), "user-1", "").Return(nil, nil)
		mockStorage.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(nil, nil)

		if _, err := s.UpdateMe(context.Background(), me, "team-1", &UpdateMeRequest{Roles: &roles}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 2 || created[0] != "developer" || created[1] != "designer" {
			t.Fatalf("unexpected roles %v", created)
		}
	})

	t.Run("empty roles list keeps the current roles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, tx := newMockedService(ctrl)
		roles := []string{}

		mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
		mockStorage.EXPECT().ListRoles(gomock.Any(), "user-1", "").Return([]*types.Role{{Role: "developer"}}, nil)
		mockStorage.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(nil, nil)

		user, err := s.UpdateMe(context.Background(), me, "team-1", &UpdateMeRequest{Roles: &roles})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(user.Roles) != 1 {
			t.Fatalf("expected the existing role to survive, got %+v", user.Roles)
		}
		if tx.calls != 1 {
			t.Fatalf("expected one transaction, got %d", tx.calls)
		}
	})

	t.Run("unknown role is rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _, tx := newMockedService(ctrl)
		roles := []string{"wizard"}

		_, err := s.UpdateMe(context.Background(), me, "team-1", &UpdateMeRequest{Roles: &roles})

		var unknown *UnknownRoleError
		if !errors.As(err, &unknown) || unknown.Role != "wizard" {
			t.Fatalf("expected UnknownRoleError, got %v", err)
		}
		if tx.calls != 0 {
			t.Fatal("no transaction expected")
		}
	})

	t.Run("roles need a membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, _ := newMockedService(ctrl)
		roles := []string{"pm"}

		mockStorage.EXPECT().GetLiveMembership(gomock.Any(), "user-1", "team-1").Return(nil, storage.ErrNotFound)

		_, err := s.UpdateMe(context.Background(), me, "team-1", &UpdateMeRequest{Roles: &roles})
		if !errors.Is(err, authorization.ErrNotATeamMember) {
			t.Fatalf("expected ErrNotATeamMember, got %v", err)
		}
	})
}

func TestService_DeleteUser(t *testing.T) {
	actor := &types.User{ID: "actor"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "actor outside the team",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetLiveMembership(gomock.Any(), "actor", "team-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: authorization.ErrNotATeamMember,
		},
		{
			name: "plain member is forbidden",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetLiveMembership(gomock.Any(), "actor", "team-1").Return(&types.UserTeam{}, nil)
				s.EXPECT().ListRoles(gomock.Any(), "actor", "team-1").Return([]*types.Role{{Role: "developer"}}, nil)
			},
			expectedErr: authorization.ErrForbidden,
		},
		{
			name: "target already gone",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetLiveMembership(gomock.Any(), "actor", "team-1").Return(&types.UserTeam{HasPermissionManageUsers: true}, nil)
				s.EXPECT().ListRoles(gomock.Any(), "actor", "team-1").Return(nil, nil)
				s.EXPECT().SoftDeleteMembership(gomock.Any(), "target", "team-1").Return(storage.ErrNotFound)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetLiveMembership(gomock.Any(), "actor", "team-1").Return(&types.UserTeam{}, nil)
				s.EXPECT().ListRoles(gomock.Any(), "actor", "team-1").Return([]*types.Role{{Role: "Captain"}}, nil)
				s.EXPECT().SoftDeleteMembership(gomock.Any(), "target", "team-1").Return(dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name: "vice captain removes member",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetLiveMembership(gomock.Any(), "actor", "team-1").Return(&types.UserTeam{}, nil)
				s.EXPECT().ListRoles(gomock.Any(), "actor", "team-1").Return([]*types.Role{{Role: "Vice-Captain"}}, nil)
				s.EXPECT().SoftDeleteMembership(gomock.Any(), "target", "team-1").Return(nil)
				s.EXPECT().SoftDeleteRoles(gomock.Any(), "target", "team-1").Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newMockedService(ctrl)
			tc.setupMocks(mockStorage)

			err := s.DeleteUser(context.Background(), "target", "team-1", actor)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
