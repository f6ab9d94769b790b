package ogone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/gateway-client/internal/domain"
	pkgerrors "github.com/kevin07696/gateway-client/pkg/errors"
)

const approvedXML = `<?xml version="1.0"?>
<ncresponse orderID="1234" PAYID="3014726" NCSTATUS="0" NCERROR="0" ACCEPTANCE="test123" STATUS="5" amount="15" currency="EUR"/>`

const declinedXML = `<ncresponse orderID="1234" PAYID="3014727" NCERROR="50001112" NCERRORPLUS="Rejected|Invalid card" STATUS="2"/>`

func TestParseBodyRootAttributes(t *testing.T) {
	params, err := parseBody([]byte(approvedXML))
	require.NoError(t, err)

	assert.Equal(t, "3014726", params["PAYID"])
	assert.Equal(t, "0", params["NCERROR"])
	assert.Equal(t, "1234", params["orderID"])
	assert.Equal(t, "test123", params["ACCEPTANCE"])
}

func TestParseBodyHTMLAnswer(t *testing.T) {
	body := `<ncresponse PAYID="99" NCERROR="0" STATUS="46">` +
		`<HTML_ANSWER>PGZvcm0gbWV0aG9kPSJwb3N0Ij48L2Zvcm0+</HTML_ANSWER>` +
		`</ncresponse>`

	params, err := parseBody([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "PGZvcm0gbWV0aG9kPSJwb3N0Ij48L2Zvcm0+", params["HTML_ANSWER"])
	assert.Equal(t, "99", params["PAYID"])
}

func TestParseBodyMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated element", `<ncresponse PAYID="1"`},
		{"plain text", "Service unavailable"},
		{"empty body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBody([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, pkgerrors.IsParse(err))

			var parseErr *pkgerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.body, parseErr.RawBody)
		})
	}
}

func TestNormalizeApproved(t *testing.T) {
	params, err := parseBody([]byte(approvedXML))
	require.NoError(t, err)

	result := normalize(params, "SAL", true)

	assert.True(t, result.Success)
	assert.Equal(t, "The transaction was successful", result.Message)
	assert.Equal(t, "3014726;SAL", result.Authorization)
	assert.True(t, result.TestMode)
}

func TestNormalizeDecline(t *testing.T) {
	params, err := parseBody([]byte(declinedXML))
	require.NoError(t, err)

	result := normalize(params, "SAL", false)

	assert.False(t, result.Success)
	assert.Equal(t, "Rejected, invalid card", result.Message)
	assert.Equal(t, "3014727;SAL", result.Authorization)
}

func TestIsApproved(t *testing.T) {
	tests := []struct {
		ncError string
		want    bool
	}{
		{"0", true},
		{" 0 ", true},
		{"50001112", false},
		{"", false},
		{"not-a-number", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isApproved(tt.ncError), "NCERROR=%q", tt.ncError)
	}
}

func TestNormalizeMissingMessageFallsBack(t *testing.T) {
	result := normalize(map[string]string{"NCERROR": "50001111", "PAYID": "7"}, "RES", false)

	assert.Equal(t, "The transaction failed", result.Message)
	assert.Equal(t, "7;RES", result.Authorization)
}

func TestNormalizeVerificationResults(t *testing.T) {
	tests := []struct {
		name    string
		avs     string
		cvv     string
		wantAVS domain.VerificationResult
		wantCVV domain.VerificationResult
	}{
		{"both matched", "OK", "OK", domain.VerificationMatched, domain.VerificationMatched},
		{"avs failed cvv not checked", "KO", "NO", domain.VerificationFailed, domain.VerificationNotChecked},
		{"unmapped codes", "XX", "??", domain.VerificationUnknown, domain.VerificationUnknown},
		{"absent", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]string{"NCERROR": "0", "PAYID": "1"}
			if tt.avs != "" {
				params["AAVCheck"] = tt.avs
			}
			if tt.cvv != "" {
				params["CVCCheck"] = tt.cvv
			}

			result := normalize(params, "SAL", false)
			assert.Equal(t, tt.wantAVS, result.AVSResult)
			assert.Equal(t, tt.wantCVV, result.CVVResult)
		})
	}
}

func TestAuthorizationFromWithoutPayID(t *testing.T) {
	assert.Empty(t, authorizationFrom(map[string]string{}, "SAL"))
}
