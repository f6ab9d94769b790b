package ports

import "context"

// Secret is a retrieved secret with its version identifier.
type Secret struct {
	Value   string
	Version string
}

// SecretManager retrieves gateway secrets (portal keys, signature
// passphrases) from a backing store. Implementations handle authentication
// with the store and may cache values with a TTL.
type SecretManager interface {
	// GetSecret retrieves a secret by path. The path format depends on the
	// backend:
	//   - local: file path under the configured base directory
	//   - AWS:   secret name, e.g. "gateway-client/payone/portal-key"
	//   - Vault: KV path, e.g. "gateway-client/payone"
	GetSecret(ctx context.Context, path string) (*Secret, error)
}
