// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for snowchat.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving sensitive data such as
// the Snowflake password, the Cortex session token, and the optional mirror DSN.
//
// The package supports multiple operating systems including macOS Keychain and
// Windows Credential Manager, with thread-safe operations and proper error handling.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "snowchat"

// Keys used for storing secrets in the OS keychain.
const (
	KeyUsername     = "snowflake_username"
	KeyPassword     = "snowflake_password"
	KeySessionToken = "snowflake_session_token"
	KeyAuthState    = "auth_state"
	KeyMirrorDSN    = "mirror_dsn"
)

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}

	return &Manager{
		ring: ring,
	}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	// If already initialized successfully, return it
	if globalManager != nil {
		return globalManager, nil
	}

	// If previous initialization failed, retry
	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
// Forces use of macOS Keychain or Windows Credential Manager - no file fallback.
func openRing() (keyring.Keyring, error) {
	// Only support darwin/windows platforms
	if runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		return nil, errors.New("secure storage not supported on this OS (macOS/Windows only)")
	}

	// Use platform-specific native backends only
	var allowedBackends []keyring.BackendType
	if runtime.GOOS == "darwin" {
		// Try macOS Keychain first, then pass (password store) as fallback
		// Pass requires 'pass' utility installed: brew install pass
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	} else if runtime.GOOS == "windows" {
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}

	// Hint prefixes where supported to minimize namespace collisions
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, err
	}

	return ring, nil
}

// set stores a single key/value pair, preferring the native backend.
func (m *Manager) set(key, value string) error {
	if m.backend != nil {
		return m.backend.Set(key, value)
	}
	return m.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

// get retrieves a single value for key, preferring the native backend.
func (m *Manager) get(key string) (string, error) {
	if m.backend != nil {
		return m.backend.Get(key)
	}
	it, err := m.ring.Get(key)
	if err != nil {
		return "", err
	}
	return string(it.Data), nil
}

// remove deletes a single key, ignoring missing entries.
func (m *Manager) remove(key string) {
	if m.backend != nil {
		_ = m.backend.Delete(key)
		return
	}
	_ = m.ring.Remove(key)
}

// SaveCredentials stores the Snowflake username and password.
// This method is thread-safe.
func (m *Manager) SaveCredentials(username, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if username != "" {
		if err := m.set(KeyUsername, username); err != nil {
			return err
		}
	}
	if password != "" {
		if err := m.set(KeyPassword, password); err != nil {
			return err
		}
	}
	return nil
}

// LoadCredentials retrieves the stored Snowflake username and password.
// This method is thread-safe.
func (m *Manager) LoadCredentials() (username, password string, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	username, err = m.get(KeyUsername)
	if err != nil {
		return "", "", err
	}
	password, err = m.get(KeyPassword)
	if err != nil {
		return "", "", err
	}
	if username == "" || password == "" {
		return "", "", errors.New("no stored credentials")
	}
	return username, password, nil
}

// SaveSessionToken stores the Cortex session token.
// This method is thread-safe.
func (m *Manager) SaveSessionToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set(KeySessionToken, token)
}

// LoadSessionToken retrieves the Cortex session token.
// This method is thread-safe.
func (m *Manager) LoadSessionToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, err := m.get(KeySessionToken)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("empty session token")
	}
	return token, nil
}

// ClearAuth removes all auth-related secrets from the keychain.
// This method is thread-safe.
func (m *Manager) ClearAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remove(KeyUsername)
	m.remove(KeyPassword)
	m.remove(KeySessionToken)
	m.remove(KeyAuthState)
	return nil
}

// SaveAuthState stores serialized auth state in the keychain.
// This method is thread-safe.
func (m *Manager) SaveAuthState(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set(KeyAuthState, string(data))
}

// LoadAuthState retrieves serialized auth state from the keychain.
// This method is thread-safe.
func (m *Manager) LoadAuthState() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := m.get(KeyAuthState)
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// ClearAuthState removes the stored auth state from the keychain.
// This method is thread-safe.
func (m *Manager) ClearAuthState() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(KeyAuthState)
	return nil
}

// SaveMirrorDSN stores the PostgreSQL mirror DSN in the keychain.
// This method is thread-safe.
func (m *Manager) SaveMirrorDSN(dsn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set(KeyMirrorDSN, dsn)
}

// LoadMirrorDSN retrieves the PostgreSQL mirror DSN from the keychain.
// This method is thread-safe.
func (m *Manager) LoadMirrorDSN() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.get(KeyMirrorDSN)
}

// ClearMirror removes mirror-database secrets from the keychain.
// This method is thread-safe.
func (m *Manager) ClearMirror() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(KeyMirrorDSN)
	return nil
}

// ClearAll removes all secrets from the keychain.
// This method is thread-safe and should be used with caution.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remove(KeyUsername)
	m.remove(KeyPassword)
	m.remove(KeySessionToken)
	m.remove(KeyAuthState)
	m.remove(KeyMirrorDSN)
	return nil
}
