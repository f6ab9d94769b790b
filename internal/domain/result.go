package domain

// VerificationResult is the normalized outcome of an AVS or CVV check.
// Unmapped provider codes degrade to VerificationUnknown, never to an error.
type VerificationResult string

const (
	VerificationMatched    VerificationResult = "matched"
	VerificationFailed     VerificationResult = "failed"
	VerificationNotChecked VerificationResult = "not_checked"
	VerificationUnknown    VerificationResult = "unknown"
)

// ApprovedMessage is the fixed message attached to every successful Result.
const ApprovedMessage = "The transaction was successful"

// ParseFailureMessage is attached when the provider response body could not
// be decoded.
const ParseFailureMessage = "The gateway response could not be parsed"

// Result is the normalized outcome of one request/response exchange.
// A declined transaction is a Result with Success false, not an error:
// callers branch on business outcome without exception handling.
type Result struct {
	Success bool
	Message string

	// Authorization is the opaque token to pass back unchanged on follow-up
	// operations (capture after authorize, refund after capture). The caller
	// owns that linkage; the adapter keeps no state.
	Authorization string

	// Params holds the raw parsed response fields for diagnostics.
	Params map[string]string

	// AVSResult and CVVResult are empty when the provider returned no
	// verification data at all.
	AVSResult VerificationResult
	CVVResult VerificationResult

	TestMode bool
}
