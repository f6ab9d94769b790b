package domain

// The option structs below are explicit allow-lists: builders copy named
// struct fields into the wire field set one by one, so an unknown key can
// never leak into a transmitted request.

// Address is the customer's postal address.
type Address struct {
	Street  string
	Zip     string
	City    string
	Country string // ISO 3166-1 alpha-2
}

// PersonalData identifies the customer.
type PersonalData struct {
	CustomerID string
	Salutation string
	FirstName  string
	LastName   string
	Company    string
	Email      string
}

// InvoiceLine is one billed line on an invoice-cleared transaction.
// Only the first line is transmitted, under the reserved "[1]" field suffix.
type InvoiceLine struct {
	ID          string
	Product     string
	Number      string
	Description string
	VATID       string
}

// ThreeDSDisplayMode selects how the 3-D Secure step-up page is shown.
type ThreeDSDisplayMode string

const (
	DisplayMainWindow ThreeDSDisplayMode = "main_window"
	DisplayPopup      ThreeDSDisplayMode = "popup"
	DisplayPopupBlend ThreeDSDisplayMode = "popup_blend"
)

// ThreeDSecure carries the step-up authentication exchange fields.
type ThreeDSecure struct {
	TransactionID string
	Cryptogram    string
	ECI           string
	SuccessURL    string
	ErrorURL      string
	DisplayMode   ThreeDSDisplayMode
}

// BankAccount carries direct-debit account data. Either IBAN/BIC or the
// legacy account number/bank code pair is supplied.
type BankAccount struct {
	Country       string
	AccountNumber string
	IBAN          string
	BankCode      string
	BIC           string
	Holder        string
}

// Options are the optional structured inputs merged into a request.
// Nil is a valid Options pointer everywhere.
type Options struct {
	// Reference is the merchant-side order id. A unique id is generated
	// when empty.
	Reference string

	// Currency overrides the Money currency when set.
	Currency string

	Address      *Address
	Personal     *PersonalData
	Invoice      []InvoiceLine
	ThreeDSecure *ThreeDSecure
	Bank         *BankAccount
}

// OrNil returns o, so call sites can pass a possibly-nil *Options safely.
func (o *Options) OrNil() *Options {
	if o == nil {
		return &Options{}
	}
	return o
}
