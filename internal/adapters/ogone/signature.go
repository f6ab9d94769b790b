package ogone

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"sort"
	"strings"

	"github.com/kevin07696/gateway-client/internal/domain"
)

// Algorithm selects the digest used for the SHASIGN signature field.
// AlgorithmNone keeps the legacy fixed-order canonicalization with SHA-1.
type Algorithm string

const (
	AlgorithmNone   Algorithm = ""
	AlgorithmSHA1   Algorithm = "sha1"
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
)

func (a Algorithm) newHash() hash.Hash {
	switch a {
	case AlgorithmSHA256:
		return sha256.New()
	case AlgorithmSHA512:
		return sha512.New()
	default:
		return sha1.New()
	}
}

// signer produces the SHASIGN value over a field set. The two
// canonicalization orders are not unifiable into one algorithm, so each is
// its own strategy; the server verifies the exact same string.
type signer interface {
	sign(fields *domain.FieldSet) string
}

// newSigner selects the strategy for the configured credentials. It returns
// nil when no signature key is set; the caller decides how to degrade.
func newSigner(creds Credentials) signer {
	if creds.SignatureKey == "" {
		return nil
	}
	if creds.Algorithm == AlgorithmNone {
		return legacySigner{key: creds.SignatureKey}
	}
	return canonicalSigner{key: creds.SignatureKey, algorithm: creds.Algorithm}
}

// canonicalSigner sorts field names case-insensitively, joins "NAME=value"
// pairs with the shared key as separator, appends the key once more and
// digests the whole string.
type canonicalSigner struct {
	key       string
	algorithm Algorithm
}

func (s canonicalSigner) sign(fields *domain.FieldSet) string {
	names := fields.Names()
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(fields.Get(name))
		b.WriteString(s.key)
	}

	return digest(s.algorithm, b.String())
}

// legacySigner concatenates a fixed ordered subset of fields with no
// separator, appends the key and digests with SHA-1. Absent fields
// contribute an empty string, matching the server-side computation.
type legacySigner struct {
	key string
}

var legacySignatureFields = []string{
	"ORDERID", "AMOUNT", "CURRENCY", "CARDNO", "PSPID", "OPERATION", "ALIAS",
}

func (s legacySigner) sign(fields *domain.FieldSet) string {
	var b strings.Builder
	for _, name := range legacySignatureFields {
		b.WriteString(fields.Get(name))
	}
	b.WriteString(s.key)

	return digest(AlgorithmSHA1, b.String())
}

func digest(algorithm Algorithm, canonical string) string {
	h := algorithm.newHash()
	h.Write([]byte(canonical))
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
}
