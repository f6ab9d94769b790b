package secrets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kevin07696/gateway-client/internal/domain/ports"
)

// localSecretManager implements the SecretManager port using the local
// filesystem. Development only; production loads keys from AWS Secrets
// Manager or Vault.
type localSecretManager struct {
	basePath string
	logger   *zap.Logger
}

// NewLocalSecretManager creates a new local filesystem secret manager.
func NewLocalSecretManager(basePath string, logger *zap.Logger) ports.SecretManager {
	return &localSecretManager{
		basePath: basePath,
		logger:   logger,
	}
}

// GetSecret reads a secret file relative to the base path. Trailing
// whitespace is stripped so editor-saved files work as-is.
func (m *localSecretManager) GetSecret(ctx context.Context, path string) (*ports.Secret, error) {
	filePath := filepath.Join(m.basePath, path)

	m.logger.Debug("reading secret from filesystem", zap.String("path", path))

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("secret not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}

	return &ports.Secret{
		Value:   strings.TrimRight(string(data), "\r\n"),
		Version: "v1",
	}, nil
}
