// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package version implements a multi-scheme software version value:
// parsing against a set of pluggable grammars, canonical rendering,
// total ordering, and field bumping.
//
// Most callers want the package-level Parse, which tries the ambient
// scheme set (by default just PEP 440; see SetSupportedSchemes), or
// ParseAs with an explicit scheme.  A Parser holds an explicit registry
// for callers that want parsing behavior decoupled from process-wide
// state.
package version

import (
	"errors"
	"fmt"

	"github.com/datawire/versio/pkg/scheme"
)

// ErrUnparseable reports that no supported scheme accepted a version
// string.
var ErrUnparseable = errors.New("unparseable version")

// Version is one parsed version string: the scheme that accepted it,
// plus the per-field values.  A Version is mutated in place by the bump
// methods; use Clone when the original must survive.
//
// The zero Version renders as "Unknown version" and is not comparable.
type Version struct {
	scheme scheme.Scheme
	parts  []string
}

// Parser parses version strings against an explicit scheme registry,
// trying each scheme in registry order.
type Parser struct {
	Registry *scheme.Registry
}

// Parse tries each registered scheme in order and returns the first
// match.  A scheme reporting a match failure moves on to the next
// scheme; a scheme reporting malformed input aborts immediately.  When
// no scheme matches, the error wraps ErrUnparseable.
func (p Parser) Parse(str string) (*Version, error) {
	for _, s := range p.Registry.Schemes() {
		parts, err := s.Parse(str)
		switch {
		case err == nil:
			return &Version{scheme: s, parts: parts}, nil
		case errors.Is(err, scheme.ErrNoMatch):
			continue
		default:
			return nil, fmt.Errorf("version %q: %w", str, err)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnparseable, str)
}

// ambient is the process-wide scheme set used by the package-level
// Parse.  It matches only PEP 440 until SetSupportedSchemes widens it.
var ambient = scheme.NewRegistry(scheme.PEP440)

// SetSupportedSchemes replaces the ambient scheme set used by the
// package-level Parse.  Call it once during initialization; it is not
// synchronized against concurrent Parse calls.
func SetSupportedSchemes(schemes ...scheme.Scheme) {
	ambient = scheme.NewRegistry(schemes...)
}

// SupportedSchemes returns the current ambient scheme set.
func SupportedSchemes() []scheme.Scheme {
	return ambient.Schemes()
}

// Parse parses str against the ambient scheme set.
func Parse(str string) (*Version, error) {
	return Parser{Registry: ambient}.Parse(str)
}

// ParseAs parses str against exactly one scheme.
func ParseAs(str string, s scheme.Scheme) (*Version, error) {
	parts, err := s.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", str, err)
	}
	return &Version{scheme: s, parts: parts}, nil
}

// Scheme returns the scheme that parsed this version, or nil for the
// zero Version.
func (v *Version) Scheme() scheme.Scheme { return v.scheme }

// Parts returns a copy of the per-field values in storage order.
func (v *Version) Parts() []string {
	return append([]string(nil), v.parts...)
}

// Clone returns an independent copy of v.
func (v *Version) Clone() *Version {
	return &Version{
		scheme: v.scheme,
		parts:  append([]string(nil), v.parts...),
	}
}

// String renders the version canonically through its scheme's format.
func (v *Version) String() string {
	if v == nil || v.parts == nil {
		return "Unknown version"
	}
	return v.scheme.Format(v.parts)
}
