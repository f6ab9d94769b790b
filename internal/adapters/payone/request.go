package payone

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kevin07696/gateway-client/internal/domain"
	pkgerrors "github.com/kevin07696/gateway-client/pkg/errors"
)

// maxReferenceLength is the gateway's limit on the merchant reference field.
const maxReferenceLength = 20

// buildFields assembles the request field set for a new-order operation.
// Fields written by the payment-method branch win over later option merges.
func (g *Gateway) buildFields(op domain.Operation, money domain.Money, method domain.PaymentMethod, opts *domain.Options) (*domain.FieldSet, error) {
	opts = opts.OrNil()

	fields := domain.NewFieldSet()
	g.addAccountFields(fields, op)
	fields.Set("reference", referenceOrDefault(opts.Reference))
	fields.Set("amount", fmt.Sprintf("%d", money.MinorUnits()))
	fields.Set("currency", currencyFor(money, opts))

	if err := addPaymentMethod(fields, method, opts); err != nil {
		return nil, err
	}

	addAddress(fields, opts.Address)
	addPersonalData(fields, opts.Personal)
	addThreeDSecure(fields, opts.ThreeDSecure)

	return fields, nil
}

// buildStoreFields assembles the field set for tokenizing card data.
func (g *Gateway) buildStoreFields(method domain.PaymentMethod, opts *domain.Options) (*domain.FieldSet, error) {
	opts = opts.OrNil()

	card, ok := method.(domain.CreditCard)
	if !ok {
		return nil, pkgerrors.NewConfigurationError("method", "only card data can be stored as an alias")
	}

	fields := domain.NewFieldSet()
	g.addAccountFields(fields, domain.OperationStore)
	fields.Set("storecarddata", "yes")
	if err := addCard(fields, card); err != nil {
		return nil, err
	}

	addAddress(fields, opts.Address)
	addPersonalData(fields, opts.Personal)

	return fields, nil
}

// buildMaintenanceFields assembles the field set for capture and refund,
// which reference a prior transaction id instead of a payment method.
func (g *Gateway) buildMaintenanceFields(op domain.Operation, money domain.Money, authorization string, opts *domain.Options) (*domain.FieldSet, error) {
	opts = opts.OrNil()

	if authorization == "" {
		return nil, pkgerrors.NewConfigurationError("txid", "authorization token is required for "+string(op))
	}

	// Refund amounts are transmitted as negative minor units; the caller
	// always passes a positive amount.
	if op == domain.OperationRefund && money.MinorUnits() > 0 {
		money = money.Negate()
	}

	fields := domain.NewFieldSet()
	g.addAccountFields(fields, op)
	fields.Set("txid", authorization)
	fields.Set("amount", fmt.Sprintf("%d", money.MinorUnits()))
	fields.Set("currency", currencyFor(money, opts))

	return fields, nil
}

// buildDirectDebitFields assembles the field set for a bank debit.
// Bank account data and a postal address are both required.
func (g *Gateway) buildDirectDebitFields(money domain.Money, opts *domain.Options) (*domain.FieldSet, error) {
	opts = opts.OrNil()

	if opts.Bank == nil {
		return nil, pkgerrors.NewConfigurationError("bank", "bank account data is required for direct debit")
	}
	if opts.Address == nil {
		return nil, pkgerrors.NewConfigurationError("address", "postal address is required for direct debit")
	}

	fields := domain.NewFieldSet()
	g.addAccountFields(fields, domain.OperationDirectDebit)
	fields.Set("reference", referenceOrDefault(opts.Reference))
	fields.Set("amount", fmt.Sprintf("%d", money.MinorUnits()))
	fields.Set("currency", currencyFor(money, opts))
	fields.Set("clearingtype", ClearingTypeDebit)

	addBankAccount(fields, opts.Bank)
	addAddress(fields, opts.Address)
	addPersonalData(fields, opts.Personal)

	return fields, nil
}

// addAccountFields writes the merchant account identifiers and the request
// verb shared by every operation.
func (g *Gateway) addAccountFields(fields *domain.FieldSet, op domain.Operation) {
	fields.Set("request", requestVerbs[op])
	fields.Set("mid", g.creds.MerchantID)
	fields.Set("portalid", g.creds.PortalID)
	fields.Set("aid", g.creds.SubAccountID)
	fields.Set("mode", string(g.creds.Mode))
	fields.Set("encoding", "UTF-8")
}

// addPaymentMethod dispatches on the payment-method variant. The switch is
// exhaustive over the sealed interface.
func addPaymentMethod(fields *domain.FieldSet, method domain.PaymentMethod, opts *domain.Options) error {
	switch m := method.(type) {
	case domain.CreditCard:
		return addCard(fields, m)
	case domain.StoredReference:
		fields.Set("clearingtype", ClearingTypeCard)
		if m.IsNumeric() {
			fields.Set("userid", m.ID)
		} else {
			fields.Set("pseudocardpan", m.ID)
		}
		return nil
	case domain.InvoiceReference:
		fields.Set("clearingtype", ClearingTypeInvoice)
		fields.Set("invoiceid", m.Token)
		addInvoiceLines(fields, opts.Invoice)
		return nil
	default:
		return pkgerrors.NewConfigurationError("method", fmt.Sprintf("unsupported payment method %T", method))
	}
}

func addCard(fields *domain.FieldSet, card domain.CreditCard) error {
	brandCode, err := cardBrandCode(card.Brand)
	if err != nil {
		return err
	}

	fields.Set("clearingtype", ClearingTypeCard)
	fields.Set("cardpan", card.Number)
	fields.Set("cardtype", brandCode)
	fields.Set("cardexpiredate", card.ExpiryYYMM())
	fields.Set("cardcvc2", card.VerificationValue)
	fields.Set("cardholder", card.HolderName())
	fields.Set("firstname", card.FirstName)
	fields.Set("lastname", card.LastName)
	return nil
}

// addInvoiceLines transmits the first invoice line under the reserved "[1]"
// field-name suffix.
func addInvoiceLines(fields *domain.FieldSet, lines []domain.InvoiceLine) {
	if len(lines) == 0 {
		return
	}
	line := lines[0]
	fields.Set("id[1]", line.ID)
	fields.Set("pr[1]", line.Product)
	fields.Set("no[1]", line.Number)
	fields.Set("de[1]", line.Description)
	fields.Set("va[1]", line.VATID)
}

// Option merges fill only fields the payment-method branch left unset.

func addAddress(fields *domain.FieldSet, addr *domain.Address) {
	if addr == nil {
		return
	}
	fields.SetIfAbsent("street", addr.Street)
	fields.SetIfAbsent("zip", addr.Zip)
	fields.SetIfAbsent("city", addr.City)
	fields.SetIfAbsent("country", addr.Country)
}

func addPersonalData(fields *domain.FieldSet, personal *domain.PersonalData) {
	if personal == nil {
		return
	}
	fields.SetIfAbsent("customerid", personal.CustomerID)
	fields.SetIfAbsent("salutation", personal.Salutation)
	fields.SetIfAbsent("firstname", personal.FirstName)
	fields.SetIfAbsent("lastname", personal.LastName)
	fields.SetIfAbsent("company", personal.Company)
	fields.SetIfAbsent("email", personal.Email)
}

// addThreeDSecure merges the step-up fields from the explicit allow-list.
// Unknown option keys can never reach the wire.
func addThreeDSecure(fields *domain.FieldSet, tds *domain.ThreeDSecure) {
	if tds == nil {
		return
	}
	fields.SetIfAbsent("xid", tds.TransactionID)
	fields.SetIfAbsent("cavv", tds.Cryptogram)
	fields.SetIfAbsent("eci", tds.ECI)
	fields.SetIfAbsent("successurl", tds.SuccessURL)
	fields.SetIfAbsent("errorurl", tds.ErrorURL)
}

func addBankAccount(fields *domain.FieldSet, bank *domain.BankAccount) {
	fields.Set("bankcountry", bank.Country)
	fields.Set("bankaccount", bank.AccountNumber)
	fields.Set("iban", bank.IBAN)
	fields.Set("bankcode", bank.BankCode)
	fields.Set("bic", bank.BIC)
	fields.Set("bankaccountholder", bank.Holder)
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
	ref := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ref[:maxReferenceLength]
}
