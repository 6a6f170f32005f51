// ABOUTME: Environment-variable-backed SecretStore for local development
// ABOUTME: Reads BIOTRACKR_SECRET_* variables; writes stay in-process only

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const envSecretPrefix = "BIOTRACKR_SECRET_"

// EnvSecretStore implements SecretStore over environment variables. Writes
// are kept in memory for the lifetime of the process, which is enough for
// running a worker locally against real Fitbit credentials.
type EnvSecretStore struct {
	mu        sync.RWMutex
	overrides map[string]string
	logger    *slog.Logger
}

// NewEnvSecretStore creates an environment-backed secret store.
func NewEnvSecretStore(logger *slog.Logger) *EnvSecretStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnvSecretStore{
		overrides: make(map[string]string),
		logger:    logger,
	}
}

// GetSecret returns an in-process override if one was written, otherwise the
// BIOTRACKR_SECRET_<NAME> environment variable.
func (s *EnvSecretStore) GetSecret(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	value, ok := s.overrides[name]
	s.mu.RUnlock()
	if ok {
		return value, nil
	}

	if value := os.Getenv(envVarName(name)); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("env secret %s: %w", name, ErrSecretNotFound)
}

// SetSecret stores the value in process memory. The backing environment is
// never mutated.
func (s *EnvSecretStore) SetSecret(_ context.Context, name, value string) error {
	s.mu.Lock()
	s.overrides[name] = value
	s.mu.Unlock()

	s.logger.Info("Stored secret in-process", "key", name)
	return nil
}

func envVarName(name string) string {
	return envSecretPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
