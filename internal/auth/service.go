// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"time"

	"snowchat/cli/internal/config"
	apperrors "snowchat/cli/internal/errors"
	"snowchat/cli/internal/keychain"
	"snowchat/cli/internal/snowflake"
)

// Service centralizes login, logout and identity checks against the
// configured Snowflake deployment.
type Service struct {
	sessions *snowflake.SessionClient
	analyst  config.Analyst
}

// NewService constructs an auth Service for the configured deployment.
func NewService(a config.Analyst) *Service {
	return &Service{
		sessions: snowflake.NewSessionClient("https://" + a.Host),
		analyst:  a,
	}
}

// Login authenticates with username and password and returns the session
// token. On success the credentials, the token and the login state are all
// persisted so the next invocation can log in without prompting. A rejected
// login surfaces as an auth error the caller can catch and retry.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	token, err := s.sessions.Login(ctx, s.analyst, username, password)
	if err != nil {
		return "", apperrors.Wrap(apperrors.AuthFailed, "Snowflake login failed", err)
	}

	km, err := keychain.GetManager()
	if err != nil {
		// The login itself worked; a missing keychain only costs persistence.
		return token, nil
	}
	_ = km.SaveCredentials(username, password)
	_ = km.SaveSessionToken(token)
	_ = Save(State{
		LoggedIn:   true,
		Account:    s.analyst.Account,
		Username:   username,
		LoggedInAt: time.Now().UTC(),
	})
	return token, nil
}

// StoredCredentials returns the keychain username/password, if any.
func (s *Service) StoredCredentials() (username, password string, ok bool) {
	km, err := keychain.GetManager()
	if err != nil {
		return "", "", false
	}
	username, password, err = km.LoadCredentials()
	if err != nil {
		return "", "", false
	}
	return username, password, true
}

// WhoAmI reports the stored identity without touching the network.
func (s *Service) WhoAmI() (State, bool) {
	st, _ := Load()
	return st, st.LoggedIn
}

// Logout removes every stored secret and the login state.
func (s *Service) Logout() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAuth()
}
