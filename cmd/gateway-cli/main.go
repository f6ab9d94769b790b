package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kevin07696/gateway-client/internal/adapters/ogone"
	"github.com/kevin07696/gateway-client/internal/adapters/payone"
	"github.com/kevin07696/gateway-client/internal/adapters/secrets"
	"github.com/kevin07696/gateway-client/internal/config"
	"github.com/kevin07696/gateway-client/internal/domain"
	"github.com/kevin07696/gateway-client/internal/domain/ports"
	"github.com/kevin07696/gateway-client/pkg/httpx"
)

// gateway-cli runs a single purchase against the configured gateway, mainly
// for verifying credentials and connectivity against the test environment.
func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	amountFlag := flag.String("amount", "10.00", "purchase amount in major units")
	currencyFlag := flag.String("currency", domain.DefaultCurrency, "ISO 4217 currency code")
	referenceFlag := flag.String("reference", "", "merchant order reference (generated when empty)")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout+10*time.Second)
	defer cancel()

	gateway, err := buildGateway(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build gateway", zap.Error(err))
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		logger.Fatal("invalid amount", zap.String("amount", *amountFlag), zap.Error(err))
	}

	card := domain.CreditCard{
		Number:            "4111111111111111",
		Month:             12,
		Year:              time.Now().Year() + 2,
		Brand:             domain.BrandVisa,
		VerificationValue: "123",
		FirstName:         "Test",
		LastName:          "Customer",
	}

	result, err := gateway.Purchase(ctx,
		domain.NewMoney(amount, *currencyFlag),
		card,
		&domain.Options{
			Reference: *referenceFlag,
			Personal:  &domain.PersonalData{Email: "test@example.com"},
			Address:   &domain.Address{Street: "Teststr. 1", Zip: "10115", City: "Berlin", Country: "DE"},
		},
	)
	if err != nil {
		logger.Fatal("purchase failed", zap.Error(err))
	}

	fmt.Printf("success:       %v\n", result.Success)
	fmt.Printf("message:       %s\n", result.Message)
	fmt.Printf("authorization: %s\n", result.Authorization)
	fmt.Printf("test mode:     %v\n", result.TestMode)
}

func buildGateway(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.Gateway, error) {
	httpClient := httpx.NewHTTPClient(httpx.GatewayClientConfig(), cfg.HTTP.Timeout)

	switch cfg.Dialect {
	case "ogone":
		key := cfg.Ogone.SignatureKey
		if cfg.Ogone.SignatureKeyPath != "" {
			resolved, err := resolveSecret(ctx, cfg, cfg.Ogone.SignatureKeyPath, logger)
			if err != nil {
				return nil, err
			}
			key = resolved
		}
		return ogone.NewGateway(ogone.Credentials{
			PSPID:        cfg.Ogone.PSPID,
			UserID:       cfg.Ogone.UserID,
			Password:     cfg.Ogone.Password,
			SignatureKey: key,
			Algorithm:    ogone.Algorithm(cfg.Ogone.Algorithm),
			Mode:         ogone.Mode(cfg.Ogone.Mode),
		}, httpClient, logger)

	default:
		key := cfg.Payone.Key
		if cfg.Payone.KeyPath != "" {
			resolved, err := resolveSecret(ctx, cfg, cfg.Payone.KeyPath, logger)
			if err != nil {
				return nil, err
			}
			key = resolved
		}
		return payone.NewGateway(payone.Credentials{
			MerchantID:   cfg.Payone.MerchantID,
			PortalID:     cfg.Payone.PortalID,
			SubAccountID: cfg.Payone.SubAccountID,
			Key:          key,
			Mode:         payone.Mode(cfg.Payone.Mode),
		}, httpClient, logger)
	}
}

func resolveSecret(ctx context.Context, cfg *config.Config, path string, logger *zap.Logger) (string, error) {
	manager, err := buildSecretManager(ctx, cfg.Secrets, logger)
	if err != nil {
		return "", err
	}
	secret, err := manager.GetSecret(ctx, path)
	if err != nil {
		return "", err
	}
	return secret.Value, nil
}

func buildSecretManager(ctx context.Context, cfg config.SecretsConfig, logger *zap.Logger) (ports.SecretManager, error) {
	switch cfg.Backend {
	case "local":
		return secrets.NewLocalSecretManager(cfg.LocalBasePath, logger), nil
	case "aws":
		awsCfg := secrets.DefaultAWSSecretsManagerConfig(cfg.AWSRegion)
		awsCfg.Profile = cfg.AWSProfile
		awsCfg.Endpoint = cfg.AWSEndpoint
		return secrets.NewAWSSecretsManagerAdapter(ctx, awsCfg, logger)
	case "vault":
		vaultCfg := secrets.DefaultVaultConfig(cfg.VaultAddress)
		vaultCfg.Token = cfg.VaultToken
		vaultCfg.MountPath = cfg.VaultMountPath
		return secrets.NewVaultAdapter(vaultCfg, logger)
	default:
		return nil, fmt.Errorf("unsupported secrets backend %q (use local, aws or vault)", cfg.Backend)
	}
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	return zapCfg.Build()
}
