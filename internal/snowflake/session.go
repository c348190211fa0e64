// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package snowflake opens authenticated Snowflake sessions for snowchat.
// It issues the legacy session login request to obtain the session token the
// Cortex Analyst endpoint expects in its Authorization header, and builds the
// database/sql connection used to execute generated SQL.
package snowflake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"snowchat/cli/internal/config"
)

// loginPath is the Snowflake session login endpoint.
const loginPath = "/session/v1/login-request"

// SessionClient performs the session login against one Snowflake host.
type SessionClient struct {
	baseURL string
	client  *http.Client
}

// NewSessionClient creates a session client for the given base URL
// (e.g. "https://acme.snowflakecomputing.com").
func NewSessionClient(baseURL string) *SessionClient {
	return &SessionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// loginRequest is the payload of the session login endpoint.
type loginRequest struct {
	Data loginRequestData `json:"data"`
}

type loginRequestData struct {
	LoginName        string `json:"LOGIN_NAME"`
	Password         string `json:"PASSWORD"`
	AccountName      string `json:"ACCOUNT_NAME"`
	ClientAppID      string `json:"CLIENT_APP_ID"`
	ClientAppVersion string `json:"CLIENT_APP_VERSION"`
}

// loginResponse is the subset of the login reply we consume.
type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login authenticates with username/password and returns the session token.
// The token is the credential the analyst endpoint accepts as
// `Authorization: Snowflake Token="..."`.
func (c *SessionClient) Login(ctx context.Context, a config.Analyst, username, password string) (string, error) {
	q := url.Values{}
	q.Set("databaseName", a.Database)
	q.Set("schemaName", a.Schema)
	q.Set("warehouse", a.Warehouse)
	q.Set("roleName", a.Role)

	body, err := json.Marshal(loginRequest{Data: loginRequestData{
		LoginName:        username,
		Password:         password,
		AccountName:      a.Account,
		ClientAppID:      "snowchat",
		ClientAppVersion: "1",
	}})
	if err != nil {
		return "", fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath+"?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("session login: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read login response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("session login failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var out loginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if !out.Success {
		if out.Message == "" {
			out.Message = "login rejected"
		}
		return "", fmt.Errorf("%s", out.Message)
	}
	if out.Data.Token == "" {
		return "", fmt.Errorf("login succeeded but no session token was returned")
	}
	return out.Data.Token, nil
}
