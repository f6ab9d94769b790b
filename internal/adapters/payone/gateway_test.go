package payone

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevin07696/gateway-client/internal/domain"
	pkgerrors "github.com/kevin07696/gateway-client/pkg/errors"
)

func newServerGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := NewGateway(testCredentials(), server.Client(), zap.NewNop())
	require.NoError(t, err)
	gateway.endpoint = server.URL

	return gateway, server
}

func TestPurchaseApproved(t *testing.T) {
	var posted url.Values
	gateway, _ := newServerGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		posted = r.PostForm
		w.Write([]byte("status=APPROVED\ntxid=17.4.2026\nuserid=5656"))
	})

	result, err := gateway.Purchase(context.Background(), domain.MoneyFromMinorUnits(1000, "EUR"), testCard(), nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "The transaction was successful", result.Message)
	assert.Equal(t, "17.4.2026", result.Authorization)
	assert.True(t, result.TestMode)

	assert.Equal(t, "authorization", posted.Get("request"))
	assert.Equal(t, "1000", posted.Get("amount"))
	assert.Equal(t, "EUR", posted.Get("currency"))
	assert.Equal(t, "cc", posted.Get("clearingtype"))
	assert.Equal(t, "V", posted.Get("cardtype"))

	sum := md5.Sum([]byte("secret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), posted.Get("key"))
}

func TestPurchaseDeclinedIsNotAnError(t *testing.T) {
	gateway, _ := newServerGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("status=ERROR\nerrorcode=905\ncustomermessage=Rejected|Invalid card"))
	})

	result, err := gateway.Purchase(context.Background(), domain.MoneyFromMinorUnits(1000, ""), testCard(), nil)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Rejected, invalid card", result.Message)
	assert.Equal(t, "905", result.Params["errorcode"])
}

func TestAuthorizeCaptureRoundTrip(t *testing.T) {
	var verbs []string
	gateway, _ := newServerGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		verbs = append(verbs, r.PostForm.Get("request"))
		w.Write([]byte("status=APPROVED\ntxid=tx-88"))
	})

	auth, err := gateway.Authorize(context.Background(), domain.MoneyFromMinorUnits(2500, ""), testCard(), nil)
	require.NoError(t, err)
	require.True(t, auth.Success)

	capture, err := gateway.Capture(context.Background(), domain.MoneyFromMinorUnits(2500, ""), auth.Authorization, nil)
	require.NoError(t, err)

	assert.True(t, capture.Success)
	assert.Equal(t, []string{"preauthorization", "capture"}, verbs)
}

func TestRefundPostsNegativeAmount(t *testing.T) {
	var posted url.Values
	gateway, _ := newServerGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		posted = r.PostForm
		w.Write([]byte("status=APPROVED\ntxid=tx-88"))
	})

	_, err := gateway.Refund(context.Background(), domain.MoneyFromMinorUnits(1000, ""), "tx-88", nil)
	require.NoError(t, err)

	assert.Equal(t, "refund", posted.Get("request"))
	assert.Equal(t, "-1000", posted.Get("amount"))
	assert.Equal(t, "tx-88", posted.Get("txid"))
}

func TestStorePostsCardCheck(t *testing.T) {
	var posted url.Values
	gateway, _ := newServerGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		posted = r.PostForm
		w.Write([]byte("status=VALID\npseudocardpan=4100000227987220"))
	})

	result, err := gateway.Store(context.Background(), testCard(), nil)
	require.NoError(t, err)

	assert.Equal(t, "creditcardcheck", posted.Get("request"))
	assert.Equal(t, "yes", posted.Get("storecarddata"))
	assert.Equal(t, "4100000227987220", result.Params["pseudocardpan"])
}

func TestTransportErrorSurfacesTyped(t *testing.T) {
	gateway, server := newServerGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := gateway.Purchase(context.Background(), domain.MoneyFromMinorUnits(1000, ""), testCard(), nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsTransport(err))
}

func TestContextCancellationIsTransportError(t *testing.T) {
	gateway, _ := newServerGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("status=APPROVED"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Purchase(ctx, domain.MoneyFromMinorUnits(1000, ""), testCard(), nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsTransport(err))
}
