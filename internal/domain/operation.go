package domain

// Operation is a normalized payment operation, chosen by the caller per call.
// Each dialect maps it to its own provider-specific request verb.
type Operation string

const (
	OperationPurchase    Operation = "purchase"     // Auth + capture in one call
	OperationAuthorize   Operation = "authorize"    // Reserve funds only
	OperationCapture     Operation = "capture"      // Settle a prior authorization
	OperationRefund      Operation = "refund"       // Return funds for a captured transaction
	OperationStore       Operation = "store"        // Tokenize card data into an alias
	OperationDirectDebit Operation = "direct_debit" // Bank account debit (ELV)
)
