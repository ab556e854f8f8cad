// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/team-service/internal/types"
)

const (
	captainEmail    = "captain@example.com"
	captainPassword = "captain123"
	devEmail        = "developer@example.com"
	devPassword     = "builder123"
	designerEmail   = "designer@example.com"
	designerPass    = "designer123"
)

var emailSeq atomic.Int64

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

type apiClient struct {
	http *resty.Client
}

func newClient(t *testing.T) *apiClient {
	t.Helper()

	return &apiClient{
		http: resty.New().
			SetBaseURL(strings.TrimSuffix(testEnv.BaseURL, "/") + "/api/v0").
			SetTimeout(10 * time.Second),
	}
}

// call sends the request and decodes the envelope data into out. It returns the HTTP status.
func (c *apiClient) call(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	env := new(envelope)
	req := c.http.R().SetResult(env).SetError(env)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}

	if out != nil && resp.IsSuccess() && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("failed to decode %s %s: %v", method, path, err)
		}
	}

	return resp.StatusCode()
}

type signInResult struct {
	Auth struct {
		Token string `json:"token"`
	} `json:"auth"`
	User *types.User `json:"user"`
}

func (c *apiClient) signIn(t *testing.T, email, password string) (string, *types.User) {
	t.Helper()

	var res signInResult
	if code := c.call(t, "POST", "/users/token", "", map[string]string{"email": email, "password": password}, &res); code != 200 {
		t.Fatalf("sign in as %s returned %d", email, code)
	}
	return res.Auth.Token, res.User
}

func (c *apiClient) createTeam(t *testing.T, token, name string) *types.Team {
	t.Helper()

	team := new(types.Team)
	body := map[string]string{"name": name, "educational_institution_type": "university", "city_id": "e2e-city"}
	if code := c.call(t, "POST", "/teams", token, body, team); code != 201 {
		t.Fatalf("create team returned %d", code)
	}
	return team
}

type createdInvitation struct {
	Invitation *types.Invitation `json:"invitation"`
	InviteURL  string            `json:"invite_url"`
}

func (c *apiClient) invite(t *testing.T, token, teamID string, body map[string]any) *createdInvitation {
	t.Helper()

	res := new(createdInvitation)
	if code := c.call(t, "POST", "/teams/"+teamID+"/invitations", token, body, res); code != 201 {
		t.Fatalf("create invitation returned %d", code)
	}
	return res
}

func uniqueEmail() string {
	return fmt.Sprintf("e2e-%d-%d@example.com", time.Now().UnixNano(), emailSeq.Add(1))
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, emailSeq.Add(1))
}
