package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Dialect string // "payone" or "ogone"
	HTTP    HTTPConfig
	Payone  PayoneConfig
	Ogone   OgoneConfig
	Secrets SecretsConfig
	Logger  LoggerConfig
}

// HTTPConfig holds gateway HTTP client configuration.
type HTTPConfig struct {
	Timeout time.Duration
}

// PayoneConfig holds the key=value dialect account configuration. The portal
// key is resolved through the secrets backend when SecretPath is set.
type PayoneConfig struct {
	MerchantID   string
	PortalID     string
	SubAccountID string
	Key          string
	KeyPath      string // secrets backend path, overrides Key
	Mode         string // test or live
}

// OgoneConfig holds the XML dialect account configuration.
type OgoneConfig struct {
	PSPID            string
	UserID           string
	Password         string
	SignatureKey     string
	SignatureKeyPath string // secrets backend path, overrides SignatureKey
	Algorithm        string // "", sha1, sha256, sha512
	Mode             string // test or live
}

// SecretsConfig selects the secret-manager backend.
type SecretsConfig struct {
	Backend string // local, aws, vault

	LocalBasePath string

	AWSRegion   string
	AWSProfile  string
	AWSEndpoint string

	VaultAddress   string
	VaultToken     string
	VaultMountPath string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Dialect: getEnv("GATEWAY_DIALECT", "payone"),
		HTTP: HTTPConfig{
			Timeout: time.Duration(getEnvAsInt("GATEWAY_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Payone: PayoneConfig{
			MerchantID:   getEnv("PAYONE_MERCHANT_ID", ""),
			PortalID:     getEnv("PAYONE_PORTAL_ID", ""),
			SubAccountID: getEnv("PAYONE_SUB_ACCOUNT_ID", ""),
			Key:          getEnv("PAYONE_KEY", ""),
			KeyPath:      getEnv("PAYONE_KEY_PATH", ""),
			Mode:         getEnv("PAYONE_MODE", "test"),
		},
		Ogone: OgoneConfig{
			PSPID:            getEnv("OGONE_PSPID", ""),
			UserID:           getEnv("OGONE_USER_ID", ""),
			Password:         getEnv("OGONE_PASSWORD", ""),
			SignatureKey:     getEnv("OGONE_SIGNATURE_KEY", ""),
			SignatureKeyPath: getEnv("OGONE_SIGNATURE_KEY_PATH", ""),
			Algorithm:        getEnv("OGONE_SIGNATURE_ALGORITHM", "sha512"),
			Mode:             getEnv("OGONE_MODE", "test"),
		},
		Secrets: SecretsConfig{
			Backend:        getEnv("SECRETS_BACKEND", "local"),
			LocalBasePath:  getEnv("SECRETS_LOCAL_PATH", "./secrets"),
			AWSRegion:      getEnv("SECRETS_AWS_REGION", "eu-central-1"),
			AWSProfile:     getEnv("SECRETS_AWS_PROFILE", ""),
			AWSEndpoint:    getEnv("SECRETS_AWS_ENDPOINT", ""),
			VaultAddress:   getEnv("SECRETS_VAULT_ADDR", ""),
			VaultToken:     getEnv("SECRETS_VAULT_TOKEN", ""),
			VaultMountPath: getEnv("SECRETS_VAULT_MOUNT", "secret"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	switch cfg.Dialect {
	case "payone", "ogone":
	default:
		return nil, fmt.Errorf("GATEWAY_DIALECT must be payone or ogone, got %q", cfg.Dialect)
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
