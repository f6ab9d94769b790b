package domain

import (
	"fmt"
	"strings"
)

// CardBrand identifies the card network of a CreditCard.
type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
	BrandDiners     CardBrand = "diners"
	BrandJCB        CardBrand = "jcb"
	BrandMaestro    CardBrand = "maestro"
)

// PaymentMethod is the payment instrument supplied by the caller. It is a
// sealed interface: exactly one of CreditCard, StoredReference or
// InvoiceReference. Builders dispatch on the concrete type, so every variant
// must be handled explicitly.
type PaymentMethod interface {
	isPaymentMethod()
}

// CreditCard carries raw card data, already validated upstream. The adapter
// never persists it and never writes it to logs.
type CreditCard struct {
	Number            string
	Month             int
	Year              int
	Brand             CardBrand
	VerificationValue string
	FirstName         string
	LastName          string
}

func (CreditCard) isPaymentMethod() {}

// HolderName returns "First Last" when both parts are present, otherwise an
// empty string. A half-filled name would be worse than none on the wire, so
// the field is omitted entirely in that case.
func (c CreditCard) HolderName() string {
	if c.FirstName == "" || c.LastName == "" {
		return ""
	}
	return c.FirstName + " " + c.LastName
}

// ExpiryYYMM formats the card expiry for the wire: the year is zero-padded to
// four digits and truncated to its last two, the month zero-padded to two.
func (c CreditCard) ExpiryYYMM() string {
	year := fmt.Sprintf("%04d", c.Year)
	return fmt.Sprintf("%s%02d", year[len(year)-2:], c.Month)
}

// StoredReference is an opaque identifier issued by a prior store or purchase
// call (a card alias or a numeric gateway user id).
type StoredReference struct {
	ID string
}

func (StoredReference) isPaymentMethod() {}

// IsNumeric reports whether the reference is a numeric gateway user id as
// opposed to an alias token.
func (s StoredReference) IsNumeric() bool {
	if s.ID == "" {
		return false
	}
	return strings.IndexFunc(s.ID, func(r rune) bool { return r < '0' || r > '9' }) == -1
}

// InvoiceReference is a raw token used for non-card clearing, e.g. recurring
// invoice billing.
type InvoiceReference struct {
	Token string
}

func (InvoiceReference) isPaymentMethod() {}
