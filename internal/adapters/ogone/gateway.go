package ogone

import (
	"context"
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

const dialect = "ogone"

// Base URLs per mode. New orders go to the direct-order path; operations
// referencing a prior PAYID go to the maintenance path.
const (
	TestBaseURL = "https://secure.ogone.com/ncol/test"
	LiveBaseURL = "https://secure.ogone.com/ncol/prod"

	orderPath       = "/orderdirect.asp"
	maintenancePath = "/maintenancedirect.asp"
)

// Mode selects between the gateway's test and live environments.
type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

// Credentials is the immutable account record. PSPID, user and password are
// required. The signature key is optional for backward compatibility:
// without one no SHASIGN is sent and every construction logs a deprecation
// warning.
type Credentials struct {
	PSPID        string
	UserID       string
	Password     string
	SignatureKey string
	Algorithm    Algorithm
	Mode         Mode
}

func (c Credentials) validate() error {
	switch {
	case c.PSPID == "":
		return pkgerrors.NewConfigurationError("PSPID", "account id is required")
	case c.UserID == "":
		return pkgerrors.NewConfigurationError("USERID", "api user id is required")
	case c.Password == "":
		return pkgerrors.NewConfigurationError("PSWD", "api password is required")
	}
	return nil
}

// Gateway implements the normalized gateway port against the XML dialect.
// Safe for concurrent use; no mutable state after construction.
type Gateway struct {
	creds      Credentials
	baseURL    string
	signer     signer
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

	baseURL := LiveBaseURL
	if creds.Mode == ModeTest {
		baseURL = TestBaseURL
	}

	sgn := newSigner(creds)
	if sgn == nil {
		logger.Warn("no signature key configured, requests will not carry a SHASIGN; " +
			"unsigned requests are deprecated by the gateway")
	}

	return &Gateway{
		creds:      creds,
		baseURL:    baseURL,
		signer:     sgn,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Purchase authorizes and captures in one exchange (SAL).
func (g *Gateway) Purchase(ctx context.Context, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildFields(domain.OperationPurchase, money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationPurchase, fields)
}

// Authorize reserves funds without capturing them (RES).
func (g *Gateway) Authorize(ctx context.Context, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildFields(domain.OperationAuthorize, money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationAuthorize, fields)
}

// Capture settles a prior authorization (SAS).
func (g *Gateway) Capture(ctx context.Context, money domain.Money, authorization string, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildMaintenanceFields(domain.OperationCapture, money, authorization, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationCapture, fields)
}

// Refund returns funds for a captured transaction (RFD).
func (g *Gateway) Refund(ctx context.Context, money domain.Money, authorization string, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildMaintenanceFields(domain.OperationRefund, money, authorization, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationRefund, fields)
}

// Store binds card data to an alias via a zero-amount reserve.
func (g *Gateway) Store(ctx context.Context, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error) {
	fields, err := g.buildStoreFields(method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, domain.OperationStore, fields)
}

// DirectDebit is not available in this dialect; bank debits go through the
// key=value gateway.
func (g *Gateway) DirectDebit(ctx context.Context, money domain.Money, opts *domain.Options) (*domain.Result, error) {
	return nil, pkgerrors.NewConfigurationError("method", "direct debit is not supported by this gateway")
}

// sign computes SHASIGN over the field set as it stands, then appends it.
// The signature never covers itself.
func (g *Gateway) sign(fields *domain.FieldSet) {
	if g.signer == nil {
		return
	}
	fields.Set("SHASIGN", g.signer.sign(fields))
}

// endpointFor selects the maintenance path when the request references a
// prior transaction id.
func (g *Gateway) endpointFor(fields *domain.FieldSet) string {
	if fields.Has("PAYID") {
		return g.baseURL + maintenancePath
	}
	return g.baseURL + orderPath
}

// submit signs the field set, performs the POST exchange and normalizes the
// response. A malformed response body yields a failed Result carrying the
// raw body, not an error.
func (g *Gateway) submit(ctx context.Context, op domain.Operation, fields *domain.FieldSet) (*domain.Result, error) {
	g.sign(fields)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpointFor(fields), strings.NewReader(fields.Encode()))
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

	testMode := g.creds.Mode == ModeTest

	params, err := parseBody(body)
	if err != nil {
		g.logger.Warn("gateway response could not be parsed",
			zap.String("dialect", dialect),
			zap.String("operation", string(op)),
			zap.Error(err),
		)
		observability.ObserveGatewayRequest(dialect, string(op), observability.OutcomeParseError, time.Since(start))
		return &domain.Result{
			Success:  false,
			Message:  domain.ParseFailureMessage,
			Params:   map[string]string{"raw_body": string(body)},
			TestMode: testMode,
		}, nil
	}

	result := normalize(params, fields.Get("OPERATION"), testMode)

	outcome := observability.OutcomeDeclined
	if result.Success {
		outcome = observability.OutcomeApproved
	}
	observability.ObserveGatewayRequest(dialect, string(op), outcome, time.Since(start))

	g.logger.Info("gateway exchange completed",
		zap.String("dialect", dialect),
		zap.String("operation", string(op)),
		zap.Bool("success", result.Success),
		zap.String("payid", params["PAYID"]),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
