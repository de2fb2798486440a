// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package scheme defines pluggable version-numbering grammars.
//
// A Scheme describes one family of version strings: how to decompose a
// string into ordered fields, how to render the fields back into the
// canonical string, and the metadata (sequences, clear values, comparison
// ordering) that version bumping and ordering dispatch on.  Two variants
// exist: FieldScheme, driven by a regular expression with one capturing
// group per field, and SplitScheme, a variable-arity grammar that simply
// splits on a delimiter.
//
// Scheme values are immutable after construction and may be shared freely
// across goroutines and any number of versions.
package scheme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// ErrNoMatch reports that a string is not in the scheme's grammar.
	// It is a "try the next scheme" signal, not a hard failure.
	ErrNoMatch = errors.New("version string does not match scheme")
	// ErrMalformed reports a detected malformed shape, such as a
	// trailing delimiter.  Unlike ErrNoMatch it is a hard failure.
	ErrMalformed = errors.New("malformed version string")
)

// Scheme is a named version grammar together with its formatting and
// comparison policy.
type Scheme interface {
	// Name returns the scheme identifier, e.g. "pep440" or "A.B.C".
	Name() string
	// Description returns human-oriented prose describing the grammar.
	Description() string
	// Parse decomposes versionStr into ordered field values.  It
	// returns an error wrapping ErrNoMatch when the string (as a
	// whole; a prefix match is not a match) is not in the grammar, or
	// wrapping ErrMalformed for a detected-invalid shape.
	Parse(versionStr string) ([]string, error)
	// Format renders parsed field values back into the canonical
	// string.  It never fails: un-renderable values degrade to
	// omission.
	Format(parts []string) string
	// ClearValue returns the value assigned to fields to the right of
	// a bumped field.  An empty clear value means "absent".
	ClearValue() string
	// ExtendValue returns the fill used when reconciling dotted
	// sub-part counts during comparison.
	ExtendValue() string
}

var (
	_ Scheme = (*FieldScheme)(nil)
	_ Scheme = (*SplitScheme)(nil)
)

// FieldType controls how a parsed field is cast before formatting.  The
// zero value passes the field through as a string.
type FieldType struct {
	// Int casts the field through an integer, normalizing leading
	// zeros.
	Int bool
	// Width zero-pads the integer to this many digits.  A nonzero
	// Width implies Int.
	Width int
}

func (t FieldType) cast(raw string) string {
	if !t.Int && t.Width == 0 {
		return raw
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Cast failures degrade to omission rather than failing
		// the whole rendering.
		return ""
	}
	if t.Width > 0 {
		return fmt.Sprintf("%0*d", t.Width, n)
	}
	return strconv.Itoa(n)
}

// FieldConfig is the data from which a FieldScheme is built.  The caller
// is responsible for keeping the pattern, the format template, the field
// types, and the field list consistent with each other: a grammar with N
// fields needs N capturing groups, N template verbs, and N unique names.
type FieldConfig struct {
	// Name identifies the scheme.
	Name string
	// ParsePattern is a regular expression (regexp2 syntax, so
	// lookbehind is available) with one capturing group per field.
	// It is matched against the whole version string.
	ParsePattern string
	// ParseFlags are compilation flags for ParsePattern, e.g.
	// regexp2.IgnorePatternWhitespace for verbose patterns.
	ParseFlags regexp2.RegexOptions
	// FormatTemplate is a fmt template consuming one %s per field.
	FormatTemplate string
	// FieldTypes casts fields before formatting; unspecified trailing
	// fields are treated as strings.
	FieldTypes []FieldType
	// Fields are the case-insensitive field names, one per capturing
	// group, in group order.
	Fields []string
	// Subfields maps a field name to the ordered names of its dotted
	// sub-parts, e.g. Release -> [Major, Minor, Tiny].
	Subfields map[string][]string
	// ClearValue is assigned to fields to the right of a bumped
	// field; empty means the field becomes absent.
	ClearValue string
	// Sequences maps a field name to the ordered list of its valid
	// discrete values, in bump order.
	Sequences map[string][]string
	// CompareOrder optionally permutes fields when building a
	// comparison key; storage and formatting order are unaffected.
	CompareOrder []int
	// CompareFill optionally gives the per-position fill element used
	// in a comparison key when the field is absent.  A fill must sort
	// below every legal value of its field for "absent sorts first"
	// semantics, or above them all for "absent sorts last".
	CompareFill []string
	// ExtendValue reconciles dotted sub-part counts during
	// comparison; it defaults to "0".
	ExtendValue string
	// Description is human-oriented prose; it defaults to Name.
	Description string
}

// FieldScheme is a regex-driven grammar with a fixed set of named fields.
type FieldScheme struct {
	name        string
	description string
	pattern     *regexp2.Regexp
	format      string
	types       []FieldType
	fields      []string
	subfields   map[string]subfieldRef
	clearValue  string
	sequences   map[string][]string
	cmpOrder    []int
	cmpFill     []string
	extendValue string
}

type subfieldRef struct {
	parent string
	index  int
}

// NewFieldScheme builds an immutable FieldScheme from cfg.
func NewFieldScheme(cfg FieldConfig) (*FieldScheme, error) {
	pattern, err := regexp2.Compile(cfg.ParsePattern, cfg.ParseFlags)
	if err != nil {
		return nil, fmt.Errorf("scheme %q: %w", cfg.Name, err)
	}
	if groups := len(pattern.GetGroupNumbers()) - 1; groups != len(cfg.Fields) {
		return nil, fmt.Errorf("scheme %q: pattern has %d capturing groups for %d fields",
			cfg.Name, groups, len(cfg.Fields))
	}

	s := &FieldScheme{
		name:        cfg.Name,
		description: cfg.Description,
		pattern:     pattern,
		format:      cfg.FormatTemplate,
		types:       append([]FieldType(nil), cfg.FieldTypes...),
		fields:      make([]string, len(cfg.Fields)),
		subfields:   make(map[string]subfieldRef),
		clearValue:  cfg.ClearValue,
		sequences:   make(map[string][]string, len(cfg.Sequences)),
		cmpOrder:    append([]int(nil), cfg.CompareOrder...),
		cmpFill:     append([]string(nil), cfg.CompareFill...),
		extendValue: cfg.ExtendValue,
	}
	if s.description == "" {
		s.description = cfg.Name
	}
	if s.extendValue == "" {
		s.extendValue = "0"
	}
	for i, field := range cfg.Fields {
		s.fields[i] = strings.ToLower(field)
	}
	for parent, subs := range cfg.Subfields {
		for i, sub := range subs {
			s.subfields[strings.ToLower(sub)] = subfieldRef{
				parent: strings.ToLower(parent),
				index:  i,
			}
		}
	}
	for field, seq := range cfg.Sequences {
		s.sequences[strings.ToLower(field)] = append([]string(nil), seq...)
	}
	return s, nil
}

// MustFieldScheme is like NewFieldScheme but panics on error.  It is
// intended for package-level scheme definitions.
func MustFieldScheme(cfg FieldConfig) *FieldScheme {
	s, err := NewFieldScheme(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Name implements Scheme.
func (s *FieldScheme) Name() string { return s.name }

// Description implements Scheme.
func (s *FieldScheme) Description() string { return s.description }

// Parse implements Scheme.  On success it returns one value per declared
// field, with unmatched optional groups replaced by the clear value.
func (s *FieldScheme) Parse(versionStr string) ([]string, error) {
	m, err := s.pattern.FindStringMatch(versionStr)
	if err != nil || m == nil || m.Index != 0 || m.Length != len([]rune(versionStr)) {
		return nil, fmt.Errorf("%w %q", ErrNoMatch, s.name)
	}
	parts := make([]string, len(s.fields))
	for i := range s.fields {
		if g := m.GroupByNumber(i + 1); g != nil && len(g.Captures) > 0 {
			parts[i] = g.String()
		} else {
			parts[i] = s.clearValue
		}
	}
	return parts, nil
}

// Format implements Scheme.  Parts are right-padded with blanks and the
// field-type list with string casts up to the field count, so absent
// optional trailing fields render as empty rather than as a placeholder.
func (s *FieldScheme) Format(parts []string) string {
	args := make([]interface{}, len(s.fields))
	for i := range s.fields {
		var raw string
		if i < len(parts) {
			raw = parts[i]
		}
		var t FieldType
		if i < len(s.types) {
			t = s.types[i]
		}
		args[i] = t.cast(raw)
	}
	return fmt.Sprintf(s.format, args...)
}

// ClearValue implements Scheme.
func (s *FieldScheme) ClearValue() string { return s.clearValue }

// ExtendValue implements Scheme.
func (s *FieldScheme) ExtendValue() string { return s.extendValue }

// Fields returns the field names, lowercased, in storage order.
func (s *FieldScheme) Fields() []string {
	return append([]string(nil), s.fields...)
}

// FieldIndex resolves a case-insensitive field name to its position.
func (s *FieldScheme) FieldIndex(name string) (int, bool) {
	name = strings.ToLower(name)
	for i, field := range s.fields {
		if field == name {
			return i, true
		}
	}
	return 0, false
}

// Subfield resolves a case-insensitive subfield name to its parent field
// and zero-based sub-index.
func (s *FieldScheme) Subfield(name string) (parent string, index int, ok bool) {
	ref, ok := s.subfields[strings.ToLower(name)]
	return ref.parent, ref.index, ok
}

// Sequence returns the ordered discrete values for a field, or nil when
// the field is not sequence-valued.
func (s *FieldScheme) Sequence(field string) []string {
	return s.sequences[strings.ToLower(field)]
}

// CompareOrder returns the comparison-time field permutation, or nil.
func (s *FieldScheme) CompareOrder() []int { return s.cmpOrder }

// CompareFill returns the per-position absent-field fill values, or nil.
func (s *FieldScheme) CompareFill() []string { return s.cmpFill }
