package payone

import (
	"strings"

	"github.com/kevin07696/gateway-client/internal/domain"
)

const statusApproved = "APPROVED"

// parseBody decodes the gateway's newline-delimited KEY=value response into
// a flat map. Values may themselves contain '=', so each line is split on
// the first separator only. Empty values are preserved in the parsed map;
// the blank-field rule applies to requests, not to responses.
func parseBody(body []byte) map[string]string {
	params := make(map[string]string)
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		params[parts[0]] = parts[1]
	}
	return params
}

// normalize classifies a parsed response into a Result. Approval is a
// status-string equality check; everything else is a business decline.
func normalize(params map[string]string, testMode bool) *domain.Result {
	success := params["status"] == statusApproved

	return &domain.Result{
		Success:       success,
		Message:       messageFrom(params, success),
		Authorization: params["txid"],
		Params:        params,
		TestMode:      testMode,
	}
}

func messageFrom(params map[string]string, success bool) string {
	if success {
		return domain.ApprovedMessage
	}
	raw := params["customermessage"]
	if raw == "" {
		raw = params["errormessage"]
	}
	if raw == "" {
		return "The transaction failed"
	}
	return domain.FormatProviderMessage(raw)
}
