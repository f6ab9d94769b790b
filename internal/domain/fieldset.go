package domain

import (
	"net/url"
	"strings"
)

// FieldSet is an insertion-ordered mapping from field name to string value.
// Insertion order matters for some signature algorithms, so a plain map is
// not enough. Blank values are never stored: the wire contract forbids
// transmitting empty fields.
type FieldSet struct {
	names  []string
	values map[string]string
}

// NewFieldSet returns an empty field set.
func NewFieldSet() *FieldSet {
	return &FieldSet{values: make(map[string]string)}
}

// Set stores a field. Blank values are dropped silently. Overwriting an
// existing field keeps its original position.
func (f *FieldSet) Set(name, value string) {
	if value == "" {
		return
	}
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

// SetIfAbsent stores a field only when it is not already present.
// First writer wins.
func (f *FieldSet) SetIfAbsent(name, value string) {
	if _, ok := f.values[name]; ok {
		return
	}
	f.Set(name, value)
}

// Get returns the value for name, or an empty string when absent.
func (f *FieldSet) Get(name string) string {
	return f.values[name]
}

// Has reports whether name is present.
func (f *FieldSet) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Names returns the field names in insertion order.
func (f *FieldSet) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Len returns the number of fields.
func (f *FieldSet) Len() int {
	return len(f.names)
}

// Encode serializes the set as an application/x-www-form-urlencoded body,
// preserving insertion order.
func (f *FieldSet) Encode() string {
	var b strings.Builder
	for i, name := range f.names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.values[name]))
	}
	return b.String()
}
