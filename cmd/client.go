// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	httptypes "github.com/canonical/team-service/internal/http/types"
)

var ErrAPI = errors.New("team service api")

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Meta    json.RawMessage `json:"_meta"`
}

type apiClient struct {
	http *resty.Client
}

// newClient returns a client for the /api/v0 surface, authenticated when a token was given.
func newClient() *apiClient {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(apiURL, "/")+"/api/v0").
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	if apiToken != "" {
		c.SetAuthToken(apiToken)
	}

	return &apiClient{http: c}
}

// do sends the request and decodes the envelope's data into out, when out is not nil.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) (*envelope, error) {
	env := new(envelope)
	apiErr := new(httptypes.ErrorResponse)

	req := c.http.R().SetContext(ctx).SetResult(env).SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		return nil, errors.Join(ErrAPI, fmt.Errorf("(HTTP Status: %d) %s", resp.StatusCode(), apiErr.Message))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("unable to parse response data: %w", err)
		}
	}

	return env, nil
}
