package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSetDropsBlankValues(t *testing.T) {
	fields := NewFieldSet()
	fields.Set("amount", "1000")
	fields.Set("cardholder", "")
	fields.Set("currency", "EUR")

	assert.False(t, fields.Has("cardholder"))
	assert.Equal(t, 2, fields.Len())
	assert.Equal(t, []string{"amount", "currency"}, fields.Names())
	assert.NotContains(t, fields.Encode(), "cardholder")
}

func TestFieldSetPreservesInsertionOrder(t *testing.T) {
	fields := NewFieldSet()
	fields.Set("zulu", "1")
	fields.Set("alpha", "2")
	fields.Set("mike", "3")

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, fields.Names())
	assert.Equal(t, "zulu=1&alpha=2&mike=3", fields.Encode())
}

func TestFieldSetOverwriteKeepsPosition(t *testing.T) {
	fields := NewFieldSet()
	fields.Set("first", "1")
	fields.Set("second", "2")
	fields.Set("first", "changed")

	assert.Equal(t, []string{"first", "second"}, fields.Names())
	assert.Equal(t, "changed", fields.Get("first"))
}

func TestFieldSetSetIfAbsent(t *testing.T) {
	fields := NewFieldSet()
	fields.Set("firstname", "Card")
	fields.SetIfAbsent("firstname", "Option")
	fields.SetIfAbsent("lastname", "Holder")

	assert.Equal(t, "Card", fields.Get("firstname"))
	assert.Equal(t, "Holder", fields.Get("lastname"))
}

func TestFieldSetEncodeEscapes(t *testing.T) {
	fields := NewFieldSet()
	fields.Set("de[1]", "Widget & Co")

	assert.Equal(t, "de%5B1%5D=Widget+%26+Co", fields.Encode())
}
