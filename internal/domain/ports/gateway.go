package ports

import (
	"context"

	"github.com/kevin07696/gateway-client/internal/domain"
)

// Gateway is the normalized payment-gateway port implemented by each dialect
// adapter. Every call is a single synchronous request/response exchange.
//
// A declined or errored transaction is reported as a Result with Success
// false and a nil error. A non-nil error means the exchange itself could not
// be completed (configuration or transport failure); no request reached a
// business decision.
//
// Implementations are immutable after construction and safe for concurrent
// use without locking.
type Gateway interface {
	// Purchase authorizes and captures in one exchange.
	Purchase(ctx context.Context, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error)

	// Authorize reserves funds without capturing them.
	Authorize(ctx context.Context, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error)

	// Capture settles a prior authorization. The authorization token must be
	// passed back exactly as returned by Authorize.
	Capture(ctx context.Context, money domain.Money, authorization string, opts *domain.Options) (*domain.Result, error)

	// Refund returns funds for a captured transaction, referenced by its
	// authorization token.
	Refund(ctx context.Context, money domain.Money, authorization string, opts *domain.Options) (*domain.Result, error)

	// Store tokenizes the payment method into a reusable alias.
	Store(ctx context.Context, method domain.PaymentMethod, opts *domain.Options) (*domain.Result, error)

	// DirectDebit debits a bank account supplied in opts.Bank.
	DirectDebit(ctx context.Context, money domain.Money, opts *domain.Options) (*domain.Result, error)
}
