// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package scheme

import (
	"strings"
)

// Registry is an ordered set of schemes.  Parsing tries the schemes in
// registry order, so put the most specific grammar first.
type Registry struct {
	schemes []Scheme
}

// NewRegistry builds a Registry over the given schemes; the slice order
// is the parse-attempt order.
func NewRegistry(schemes ...Scheme) *Registry {
	return &Registry{
		schemes: append([]Scheme(nil), schemes...),
	}
}

// Schemes returns the registered schemes in order.
func (r *Registry) Schemes() []Scheme {
	return append([]Scheme(nil), r.schemes...)
}

// Lookup resolves a case-insensitive scheme name.
func (r *Registry) Lookup(name string) (Scheme, bool) {
	for _, s := range r.schemes {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}
	return nil, false
}

// Builtin returns a Registry of all built-in schemes, ordered from most
// to least restrictive grammar.
func Builtin() *Registry {
	return NewRegistry(
		Simple3,
		Simple4,
		Simple5,
		PEP440,
		Perl,
		VariableDotted,
	)
}
