package ogone

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kevin07696/gateway-client/internal/domain"
	pkgerrors "github.com/kevin07696/gateway-client/pkg/errors"
)

// buildFields assembles the request field set for a new-order operation.
func (g *Gateway) buildFields(op domain.Operation, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.FieldSet, error) {
	opts = opts.OrNil()

	fields := domain.NewFieldSet()
	g.addAccountFields(fields)
	fields.Set("ORDERID", referenceOrDefault(opts.Reference))
	fields.Set("AMOUNT", fmt.Sprintf("%d", money.MinorUnits()))
	fields.Set("CURRENCY", currencyFor(money, opts))
	fields.Set("OPERATION", operationCodes[op])

	if err := addPaymentMethod(fields, method); err != nil {
		return nil, err
	}

	addAddress(fields, opts.Address)
	addPersonalData(fields, opts.Personal)
	addThreeDSecure(fields, opts.ThreeDSecure)

	return fields, nil
}

// buildStoreFields tokenizes card data by running a zero-amount reserve with
// an explicit ALIAS the gateway will bind to the card.
func (g *Gateway) buildStoreFields(method domain.PaymentMethod, opts *domain.Options) (*domain.FieldSet, error) {
	opts = opts.OrNil()

	card, ok := method.(domain.CreditCard)
	if !ok {
		return nil, pkgerrors.NewConfigurationError("method", "only card data can be stored as an alias")
	}

	fields := domain.NewFieldSet()
	g.addAccountFields(fields)
	fields.Set("ORDERID", referenceOrDefault(opts.Reference))
	fields.Set("OPERATION", operationCodes[domain.OperationStore])
	fields.Set("ALIAS", referenceOrDefault(""))
	addCard(fields, card)

	addAddress(fields, opts.Address)
	addPersonalData(fields, opts.Personal)

	return fields, nil
}

// buildMaintenanceFields assembles the field set for capture and refund.
// The authorization token carries the payment id and the action that created
// it, joined by ';': the gateway needs both to disambiguate the id's state.
func (g *Gateway) buildMaintenanceFields(op domain.Operation, money domain.Money, authorization string, opts *domain.Options) (*domain.FieldSet, error) {
	opts = opts.OrNil()

	payID := strings.SplitN(authorization, ";", 2)[0]
	if payID == "" {
		return nil, pkgerrors.NewConfigurationError("PAYID", "authorization token is required for "+string(op))
	}

	fields := domain.NewFieldSet()
	g.addAccountFields(fields)
	fields.Set("PAYID", payID)
	fields.Set("AMOUNT", fmt.Sprintf("%d", money.MinorUnits()))
	fields.Set("CURRENCY", currencyFor(money, opts))
	fields.Set("OPERATION", operationCodes[op])

	return fields, nil
}

func (g *Gateway) addAccountFields(fields *domain.FieldSet) {
	fields.Set("PSPID", g.creds.PSPID)
	fields.Set("USERID", g.creds.UserID)
	fields.Set("PSWD", g.creds.Password)
}

// addPaymentMethod dispatches on the payment-method variant. Invoice
// clearing has no equivalent in this dialect and is rejected at build time.
func addPaymentMethod(fields *domain.FieldSet, method domain.PaymentMethod) error {
	switch m := method.(type) {
	case domain.CreditCard:
		addCard(fields, m)
		return nil
	case domain.StoredReference:
		fields.Set("ALIAS", m.ID)
		return nil
	case domain.InvoiceReference:
		return pkgerrors.NewConfigurationError("method", "invoice clearing is not supported by this gateway")
	default:
		return pkgerrors.NewConfigurationError("method", fmt.Sprintf("unsupported payment method %T", method))
	}
}

func addCard(fields *domain.FieldSet, card domain.CreditCard) {
	fields.Set("CARDNO", card.Number)
	fields.Set("ED", card.ExpiryYYMM())
	fields.Set("CVC", card.VerificationValue)
	fields.Set("CN", card.HolderName())
}

func addAddress(fields *domain.FieldSet, addr *domain.Address) {
	if addr == nil {
		return
	}
	fields.SetIfAbsent("OWNERADDRESS", addr.Street)
	fields.SetIfAbsent("OWNERZIP", addr.Zip)
	fields.SetIfAbsent("OWNERTOWN", addr.City)
	fields.SetIfAbsent("OWNERCTY", addr.Country)
}

func addPersonalData(fields *domain.FieldSet, personal *domain.PersonalData) {
	if personal == nil {
		return
	}
	fields.SetIfAbsent("CUID", personal.CustomerID)
	fields.SetIfAbsent("EMAIL", personal.Email)
	if personal.FirstName != "" && personal.LastName != "" {
		fields.SetIfAbsent("CN", personal.FirstName+" "+personal.LastName)
	}
}

// addThreeDSecure merges the step-up fields from the explicit allow-list.
func addThreeDSecure(fields *domain.FieldSet, tds *domain.ThreeDSecure) {
	if tds == nil {
		return
	}
	fields.Set("FLAG3D", "Y")
	fields.SetIfAbsent("XID", tds.TransactionID)
	fields.SetIfAbsent("ECI", tds.ECI)
	fields.SetIfAbsent("ACCEPTURL", tds.SuccessURL)
	fields.SetIfAbsent("DECLINEURL", tds.ErrorURL)
	fields.SetIfAbsent("WIN3DS", displayModeCodes[tds.DisplayMode])
}

func currencyFor(money domain.Money, opts *domain.Options) string {
	if opts.Currency != "" {
		return opts.Currency
	}
	return money.CurrencyOrDefault()
}

func referenceOrDefault(reference string) string {
	if reference != "" {
		return reference
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
