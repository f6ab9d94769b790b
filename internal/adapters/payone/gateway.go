package payone

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kevin07696/gateway-client/internal/domain"
	"github.com/kevin07696/gateway-client/internal/domain/ports"
	pkgerrors "github.com/kevin07696/gateway-client/pkg/errors"
	"github.com/kevin07696/gateway-client/pkg/observability"
)

const dialect = "payone"

// Endpoint is the single post-gateway URL; test and live traffic are
// separated by the "mode" request field, not by host.
const Endpoint = "https://api.pay1.de/post-gateway/"

// Mode selects between the gateway's test and live processing.
type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

// Credentials is the immutable merchant account record. All identifiers are
// required; validation happens at construction, not per call.
type Credentials struct {
	MerchantID   string // mid
	PortalID     string // portalid
	SubAccountID string // aid
	Key          string // shared portal key, transmitted only as an MD5 digest
	Mode         Mode
}

func (c Credentials) validate() error {
	switch {
	case c.MerchantID == "":
		return pkgerrors.NewConfigurationError("mid", "merchant id is required")
	case c.PortalID == "":
		return pkgerrors.NewConfigurationError("portalid", "portal id is required")
	case c.SubAccountID == "":
		return pkgerrors.NewConfigurationError("aid", "sub-account id is required")
	case c.Key == "":
		return pkgerrors.NewConfigurationError("key", "portal key is required")
	}
	return nil
}

// Gateway implements the normalized gateway port against the key=value
// dialect. Credentials are set once and never mutated, so a single Gateway
// is safe for concurrent use.
type Gateway struct {
	creds      Credentials
	endpoint   string
	httpClient ports.HTTPClient
	logger     *zap.Logger
}

var _ ports.Gateway = (*Gateway)(nil)

// NewGateway creates a gateway client. Missing required credentials fail
// here, before any network interaction.
func NewGateway(creds Credentials, httpClient ports.HTTPClient, logger *zap.Logger) (*Gateway, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}
	if creds.Mode == "" {
		creds.Mode = ModeLive
	}
	return &Gateway{
		creds:      creds,
		endpoint:   Endpoint,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Purchase authorizes and captures in one exchange.
func (g *Gateway) Purchase(ctx context.Context, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildFields(domain.OperationPurchase, money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationPurchase, fields)
}

// Authorize reserves funds without capturing them.
func (g *Gateway) Authorize(ctx context.Context, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildFields(domain.OperationAuthorize, money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationAuthorize, fields)
}

// Capture settles a prior authorization referenced by its txid.
func (g *Gateway) Capture(ctx context.Context, money domain.Money, authorization string, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildMaintenanceFields(domain.OperationCapture, money, authorization, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationCapture, fields)
}

// Refund returns funds for a captured transaction.
func (g *Gateway) Refund(ctx context.Context, money domain.Money, authorization string, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildMaintenanceFields(domain.OperationRefund, money, authorization, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationRefund, fields)
}

// Store tokenizes card data into a reusable alias.
func (g *Gateway) Store(ctx context.Context, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildStoreFields(method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationStore, fields)
}

// DirectDebit debits the bank account supplied in opts.Bank.
func (g *Gateway) DirectDebit(ctx context.Context, money domain.Money, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildDirectDebitFields(money, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationDirectDebit, fields)
}

// sign attaches the dialect's required authentication field: the MD5 digest
// of the shared portal key. The key itself never crosses the wire.
func (g *Gateway) sign(fields *domain.FieldSet) {
	sum := md5.Sum([]byte(g.creds.Key))
	fields.Set("key", hex.EncodeToString(sum[:]))
}

// submit signs the field set, performs the POST exchange and normalizes the
// response. Transport failures surface as TransportError with no retry.
func (g *Gateway) submit(ctx context.Context, op domain.Operation, fields *domain.FieldSet) (*domain.Result, error) {
	g.sign(fields)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(fields.Encode()))
	if err != nil {
		return nil, pkgerrors.NewTransportError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("gateway exchange failed",
			zap.String("dialect", dialect),
			zap.String("operation", string(op)),
			zap.Error(err),
		)
		observability.ObserveGatewayRequest(dialect, string(op), observability.OutcomeTransportError, time.Since(start))
		return nil, pkgerrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.ObserveGatewayRequest(dialect, string(op), observability.OutcomeTransportError, time.Since(start))
		return nil, pkgerrors.NewTransportError(err)
	}

	result := normalize(parseBody(body), g.creds.Mode == ModeTest)

	outcome := observability.OutcomeDeclined
	if result.Success {
		outcome = observability.OutcomeApproved
	}
	observability.ObserveGatewayRequest(dialect, string(op), outcome, time.Since(start))

	g.logger.Info("gateway exchange completed",
		zap.String("dialect", dialect),
		zap.String("operation", string(op)),
		zap.Bool("success", result.Success),
		zap.String("txid", result.Authorization),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
