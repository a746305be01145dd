// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for
// pharmactl. It manages all interactions with the OS credential store, holding
// the session tokens the backend issues and a small serialized session state
// blob used for offline display.
package keychain

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/99designs/keyring"

	"github.com/naimlawani01/pharmav2-dashboard/internal/xdg"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "pharmactl"

// Keys used for storing secrets in the OS keychain. The token keys mirror the
// cookie names the backend sets.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeySessionState = "session_state"
)

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends where
// available, with the encrypted file backend as a last resort so headless
// hosts still work.
func openRing() (keyring.Keyring, error) {
	fileDir := "~/.config/pharmactl/keyring"
	if dir, err := xdg.ConfigDir(); err == nil {
		fileDir = filepath.Join(dir, "keyring")
	}

	cfg := keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		LibSecretCollectionName:  "login",
		KeychainTrustApplication: true,
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(ServiceName),
	}

	return keyring.Open(cfg)
}

// SaveAuthTokens stores access and refresh tokens in the OS keychain.
// Empty values are skipped so the two tokens can be updated independently.
func (m *Manager) SaveAuthTokens(accessToken, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if accessToken != "" {
		if err := m.ring.Set(keyring.Item{Key: KeyAccessToken, Data: []byte(accessToken)}); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		if err := m.ring.Set(keyring.Item{Key: KeyRefreshToken, Data: []byte(refreshToken)}); err != nil {
			return err
		}
	}
	return nil
}

// LoadAccessToken retrieves the access token from the keychain.
func (m *Manager) LoadAccessToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyAccessToken)
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", errors.New("empty access token")
	}
	return string(it.Data), nil
}

// LoadRefreshToken retrieves the refresh token from the keychain.
func (m *Manager) LoadRefreshToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyRefreshToken)
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", errors.New("empty refresh token")
	}
	return string(it.Data), nil
}

// ClearAuth removes all auth-related secrets from the keychain.
func (m *Manager) ClearAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.ring.Remove(KeyAccessToken)
	_ = m.ring.Remove(KeyRefreshToken)
	_ = m.ring.Remove(KeySessionState)
	return nil
}

// SaveSessionState stores serialized session state in the keychain.
func (m *Manager) SaveSessionState(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{Key: KeySessionState, Data: data})
}

// LoadSessionState retrieves serialized session state from the keychain.
func (m *Manager) LoadSessionState() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeySessionState)
	if err != nil {
		return nil, err
	}
	return it.Data, nil
}
