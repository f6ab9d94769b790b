package ogone

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevin07696/gateway-client/internal/domain"
)

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func TestNewSignerSelection(t *testing.T) {
	assert.Nil(t, newSigner(Credentials{}))
	assert.IsType(t, legacySigner{}, newSigner(Credentials{SignatureKey: "k"}))
	assert.IsType(t, canonicalSigner{}, newSigner(Credentials{SignatureKey: "k", Algorithm: AlgorithmSHA256}))
}

func TestCanonicalSignerSortsFieldsCaseInsensitively(t *testing.T) {
	fields := domain.NewFieldSet()
	fields.Set("PSPID", "MyPSPID")
	fields.Set("AMOUNT", "1500")
	fields.Set("ORDERID", "1234")
	fields.Set("CURRENCY", "EUR")

	s := canonicalSigner{key: "Mysecretsig1875!?", algorithm: AlgorithmSHA1}

	want := sha1Hex("AMOUNT=1500Mysecretsig1875!?" +
		"CURRENCY=EURMysecretsig1875!?" +
		"ORDERID=1234Mysecretsig1875!?" +
		"PSPID=MyPSPIDMysecretsig1875!?")
	assert.Equal(t, want, s.sign(fields))
}

func TestCanonicalSignerSHA256(t *testing.T) {
	fields := domain.NewFieldSet()
	fields.Set("ORDERID", "1234")

	s := canonicalSigner{key: "key", algorithm: AlgorithmSHA256}

	sum := sha256.Sum256([]byte("ORDERID=1234key"))
	assert.Equal(t, strings.ToUpper(hex.EncodeToString(sum[:])), s.sign(fields))
}

func TestCanonicalSignerIsIdempotent(t *testing.T) {
	fields := domain.NewFieldSet()
	fields.Set("ORDERID", "1234")
	fields.Set("AMOUNT", "1500")

	s := canonicalSigner{key: "key", algorithm: AlgorithmSHA512}

	first := s.sign(fields)
	assert.Equal(t, first, s.sign(fields))
	assert.Len(t, first, 128)
}

func TestLegacySignerFixedOrder(t *testing.T) {
	fields := domain.NewFieldSet()
	// insertion order deliberately differs from the signature order
	fields.Set("PSPID", "MyPSPID")
	fields.Set("CURRENCY", "EUR")
	fields.Set("AMOUNT", "1500")
	fields.Set("ORDERID", "1234")
	fields.Set("OPERATION", "SAL")
	fields.Set("CARDNO", "4111111111111111")

	s := legacySigner{key: "secret"}

	// ORDERID AMOUNT CURRENCY CARDNO PSPID OPERATION ALIAS, key appended;
	// ALIAS is absent and contributes nothing
	want := sha1Hex("12341500EUR4111111111111111MyPSPIDSAL" + "secret")
	assert.Equal(t, want, s.sign(fields))
}

func TestSignAppendsShasignWithoutCoveringItself(t *testing.T) {
	gateway, err := NewGateway(Credentials{
		PSPID:        "MyPSPID",
		UserID:       "api",
		Password:     "pw",
		SignatureKey: "key",
		Algorithm:    AlgorithmSHA1,
		Mode:         ModeTest,
	}, nil, zap.NewNop())
	require.NoError(t, err)

	fields := domain.NewFieldSet()
	fields.Set("ORDERID", "1234")

	gateway.sign(fields)
	first := fields.Get("SHASIGN")
	require.NotEmpty(t, first)

	// signing again over the same payload fields must reproduce the value
	expected := canonicalSigner{key: "key", algorithm: AlgorithmSHA1}.sign(mustFields("ORDERID", "1234"))
	assert.Equal(t, expected, first)
}

func mustFields(pairs ...string) *domain.FieldSet {
	fields := domain.NewFieldSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		fields.Set(pairs[i], pairs[i+1])
	}
	return fields
}
