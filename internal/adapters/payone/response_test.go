package payone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "approved response",
			body: "status=APPROVED\ntxid=17.4.2026\nuserid=5656",
			want: map[string]string{"status": "APPROVED", "txid": "17.4.2026", "userid": "5656"},
		},
		{
			name: "empty value is preserved",
			body: "status=APPROVED\nerrorcode=\n",
			want: map[string]string{"status": "APPROVED", "errorcode": ""},
		},
		{
			name: "value containing separator",
			body: "redirecturl=https://example.com/3ds?token=a=b",
			want: map[string]string{"redirecturl": "https://example.com/3ds?token=a=b"},
		},
		{
			name: "windows line endings",
			body: "status=ERROR\r\nerrorcode=905\r\n",
			want: map[string]string{"status": "ERROR", "errorcode": "905"},
		},
		{
			name: "line without separator is skipped",
			body: "garbage\nstatus=APPROVED",
			want: map[string]string{"status": "APPROVED"},
		},
		{
			name: "empty body",
			body: "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBody([]byte(tt.body)))
		})
	}
}

func TestNormalizeApproved(t *testing.T) {
	result := normalize(map[string]string{"status": "APPROVED", "txid": "tx-17"}, true)

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "The transaction was successful", result.Message)
	assert.Equal(t, "tx-17", result.Authorization)
	assert.True(t, result.TestMode)
}

func TestNormalizeDecline(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]string
		message string
	}{
		{
			name:    "customer message preferred",
			params:  map[string]string{"status": "ERROR", "customermessage": "Card expired", "errormessage": "internal"},
			message: "Card expired",
		},
		{
			name:    "error message fallback",
			params:  map[string]string{"status": "ERROR", "errormessage": "Parameter {cardpan} faulty"},
			message: "Parameter {cardpan} faulty",
		},
		{
			name:    "no message at all",
			params:  map[string]string{"status": "ERROR"},
			message: "The transaction failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalize(tt.params, false)

			assert.False(t, result.Success)
			assert.Equal(t, tt.message, result.Message)
			assert.False(t, result.TestMode)
		})
	}
}
