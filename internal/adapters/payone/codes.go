package payone

import (
	"github.com/kevin07696/gateway-client/internal/domain"
	pkgerrors "github.com/kevin07696/gateway-client/pkg/errors"
)

// Clearing-type codes select the settlement rail. Bit-exact wire contract.
const (
	ClearingTypeCard     = "cc"  // card processing
	ClearingTypeDebit    = "elv" // bank direct debit
	ClearingTypeTransfer = "sb"  // online bank transfer
	ClearingTypeWallet   = "wlt" // e-wallet
	ClearingTypeInvoice  = "rec" // invoice / recurring billing
)

// cardBrandCodes maps a card brand to the gateway's single-letter card type.
// The mapping is total over the supported brand set; anything else is a
// configuration error, never a silently dropped field.
var cardBrandCodes = map[domain.CardBrand]string{
	domain.BrandVisa:       "V",
	domain.BrandMastercard: "M",
	domain.BrandAmex:       "A",
	domain.BrandDiners:     "D",
	domain.BrandJCB:        "J",
	domain.BrandMaestro:    "O",
}

// cardBrandCode resolves the wire code for a brand.
func cardBrandCode(brand domain.CardBrand) (string, error) {
	code, ok := cardBrandCodes[brand]
	if !ok {
		return "", pkgerrors.NewConfigurationError("cardtype", "unsupported card brand: "+string(brand))
	}
	return code, nil
}

// requestVerbs maps normalized operations to the gateway's request parameter.
var requestVerbs = map[domain.Operation]string{
	domain.OperationPurchase:    "authorization",
	domain.OperationAuthorize:   "preauthorization",
	domain.OperationCapture:     "capture",
	domain.OperationRefund:      "refund",
	domain.OperationStore:       "creditcardcheck",
	domain.OperationDirectDebit: "authorization",
}
