package ogone

import (
	"github.com/kevin07696/gateway-client/internal/domain"
)

// Operation codes for the OPERATION request field.
const (
	opCodePurchase  = "SAL" // sale: authorize and capture
	opCodeAuthorize = "RES" // reserve funds
	opCodeCapture   = "SAS" // capture and close the authorization
	opCodeRefund    = "RFD" // refund
)

var operationCodes = map[domain.Operation]string{
	domain.OperationPurchase:  opCodePurchase,
	domain.OperationAuthorize: opCodeAuthorize,
	domain.OperationCapture:   opCodeCapture,
	domain.OperationRefund:    opCodeRefund,
	domain.OperationStore:     opCodeAuthorize,
}

// AVS (AAVCheck) and CVV (CVCCheck) result codes. Codes outside these
// tables map to VerificationUnknown, never to an error.
var avsCodes = map[string]domain.VerificationResult{
	"OK": domain.VerificationMatched,
	"KO": domain.VerificationFailed,
	"NO": domain.VerificationNotChecked,
}

var cvvCodes = map[string]domain.VerificationResult{
	"OK": domain.VerificationMatched,
	"KO": domain.VerificationFailed,
	"NO": domain.VerificationNotChecked,
}

func verificationFrom(table map[string]domain.VerificationResult, code string) domain.VerificationResult {
	if code == "" {
		return ""
	}
	if result, ok := table[code]; ok {
		return result
	}
	return domain.VerificationUnknown
}

// WIN3DS display-mode codes for the 3-D Secure step-up window.
var displayModeCodes = map[domain.ThreeDSDisplayMode]string{
	domain.DisplayMainWindow: "MAINW",
	domain.DisplayPopup:      "POPUP",
	domain.DisplayPopupBlend: "POPIX",
}
