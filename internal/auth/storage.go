// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth provides the credential gate for snowchat. It performs the
// Snowflake session login, persists the username, password and session token
// in the OS keychain, and tracks the logged-in state so later invocations can
// skip the password prompt.
package auth

import (
	"encoding/json"
	"time"

	"snowchat/cli/internal/keychain"
)

// State is the non-secret login state, serialized into the keychain next to
// the secrets so everything clears together on logout.
type State struct {
	LoggedIn   bool      `json:"logged_in"`
	Account    string    `json:"account"`
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at,omitempty"`
}

// Load reads the stored state. A missing or unreadable entry degrades to the
// zero state, not an error; the caller just sees a logged-out user.
func Load() (State, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return State{}, nil
	}
	raw, err := km.LoadAuthState()
	if err != nil || len(raw) == 0 {
		return State{}, nil
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return State{}, nil
	}
	return s, nil
}

// Save persists the state.
func Save(s State) error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return km.SaveAuthState(raw)
}

// Clear removes the stored state.
func Clear() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAuthState()
}
