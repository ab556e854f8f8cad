// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/types"
)

// memStore is an in-memory StorageInterface. Its WithTx serialises whole
// transactions and discards their writes on error, which is enough to exercise
// the lifecycle rules without a database.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	seq         int
	teams       map[string]*types.Team
	users       map[string]*types.User
	memberships []*types.UserTeam
	roles       []*types.Role
	invitations map[string]*types.Invitation
}

func newMemStore() *memStore {
	return &memStore{
		teams:       map[string]*types.Team{},
		users:       map[string]*types.User{},
		invitations: map[string]*types.Invitation{},
	}
}

type memSnapshot struct {
	users       map[string]*types.User
	memberships []*types.UserTeam
	roles       []*types.Role
	invitations map[string]types.InvitationStatus
}

func (m *memStore) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := memSnapshot{
		users:       map[string]*types.User{},
		memberships: slices.Clone(m.memberships),
		roles:       slices.Clone(m.roles),
		invitations: map[string]types.InvitationStatus{},
	}
	for k, v := range m.users {
		s.users[k] = v
	}
	for k, v := range m.invitations {
		s.invitations[k] = v.Status
	}
	return s
}

func (m *memStore) restore(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = s.users
	m.memberships = s.memberships
	m.roles = s.roles
	for k, st := range s.invitations {
		m.invitations[k].Status = st
	}
}

func (m *memStore) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	snap := m.snapshot()
	if err := fn(ctx); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) nextID() string {
	m.seq++
	return fmt.Sprintf("00000000-0000-7000-8000-%012d", m.seq)
}

func (m *memStore) addTeam(name string) *types.Team {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &types.Team{ID: m.nextID(), Name: name}
	m.teams[t.ID] = t
	return t
}

func (m *memStore) GetTeamByID(_ context.Context, id string) (*types.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return t, nil
}

func (m *memStore) CreateInvitation(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := *inv
	c.ID = m.nextID()
	c.Status = types.InvitationStatusPending
	c.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	m.invitations[c.ID] = &c
	out := c
	return &out, nil
}

func (m *memStore) GetInvitationByToken(_ context.Context, token string) (*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, inv := range m.invitations {
		if inv.Token == token {
			c := *inv
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) GetInvitationByID(_ context.Context, id string) (*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.invitations[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := *inv
	return &c, nil
}

func (m *memStore) ListInvitationsByTeamID(_ context.Context, teamID string) ([]*types.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Invitation, 0)
	for _, inv := range m.invitations {
		if inv.TeamID == teamID {
			c := *inv
			out = append(out, &c)
		}
	}
	slices.SortFunc(out, func(a, b *types.Invitation) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (m *memStore) TransitionInvitation(_ context.Context, id string, to types.InvitationStatus, from ...types.InvitationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.invitations[id]
	if !ok || !slices.Contains(from, inv.Status) {
		return storage.ErrNotFound
	}
	inv.Status = to
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (m *memStore) CreateUser(_ context.Context, u *types.User) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, storage.ErrDuplicateKey
		}
	}
	c := *u
	c.ID = m.nextID()
	m.users[c.ID] = &c
	return &c, nil
}

func (m *memStore) GetLiveMembership(_ context.Context, userID, teamID string) (*types.UserTeam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ut := range m.memberships {
		if ut.UserID == userID && ut.TeamID == teamID && ut.DeletedAt == nil {
			return ut, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateMembership(_ context.Context, ut *types.UserTeam) (*types.UserTeam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.memberships {
		if existing.UserID == ut.UserID && existing.TeamID == ut.TeamID && existing.DeletedAt == nil {
			return nil, storage.ErrDuplicateKey
		}
	}
	c := *ut
	c.ID = m.nextID()
	m.memberships = append(m.memberships, &c)
	return &c, nil
}

func (m *memStore) CreateRole(_ context.Context, r *types.Role) (*types.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := *r
	c.ID = m.nextID()
	m.roles = append(m.roles, &c)
	return &c, nil
}

func (m *memStore) liveMemberships(userID, teamID string) []*types.UserTeam {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*types.UserTeam
	for _, ut := range m.memberships {
		if ut.UserID == userID && ut.TeamID == teamID && ut.DeletedAt == nil {
			out = append(out, ut)
		}
	}
	return out
}

func (m *memStore) userCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.users)
}
