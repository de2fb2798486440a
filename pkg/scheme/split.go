// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package scheme

import (
	"fmt"
	"regexp"
	"strings"
)

// SplitScheme is a variable-arity grammar: any number of delimited
// segments, each of which must match the segment pattern.  The canonical
// example is "variable-dotted", an arbitrary-depth dotted-numeric
// version.
type SplitScheme struct {
	name        string
	description string
	segment     *regexp.Regexp
	delimiter   *regexp.Regexp
	separator   string
	clearValue  string
	extendValue string
}

// SplitConfig is the data from which a SplitScheme is built.
type SplitConfig struct {
	Name string
	// SegmentPattern validates each delimited segment; it is
	// implicitly anchored to the whole segment.
	SegmentPattern string
	// DelimiterPattern splits the version string; Separator joins it
	// back together.
	DelimiterPattern string
	Separator        string
	// ClearValue resets segments to the right of a bumped segment.
	ClearValue string
	// ExtendValue fills appended segments; it defaults to ClearValue.
	ExtendValue string
	Description string
}

// NewSplitScheme builds an immutable SplitScheme from cfg.
func NewSplitScheme(cfg SplitConfig) (*SplitScheme, error) {
	segment, err := regexp.Compile(`\A(?:` + cfg.SegmentPattern + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("scheme %q: %w", cfg.Name, err)
	}
	delimiter, err := regexp.Compile(cfg.DelimiterPattern)
	if err != nil {
		return nil, fmt.Errorf("scheme %q: %w", cfg.Name, err)
	}
	s := &SplitScheme{
		name:        cfg.Name,
		description: cfg.Description,
		segment:     segment,
		delimiter:   delimiter,
		separator:   cfg.Separator,
		clearValue:  cfg.ClearValue,
		extendValue: cfg.ExtendValue,
	}
	if s.description == "" {
		s.description = cfg.Name
	}
	if s.extendValue == "" {
		s.extendValue = cfg.ClearValue
	}
	return s, nil
}

// MustSplitScheme is like NewSplitScheme but panics on error.
func MustSplitScheme(cfg SplitConfig) *SplitScheme {
	s, err := NewSplitScheme(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Name implements Scheme.
func (s *SplitScheme) Name() string { return s.name }

// Description implements Scheme.
func (s *SplitScheme) Description() string { return s.description }

// Parse implements Scheme.  An empty segment (as produced by a leading,
// trailing, or doubled delimiter) is a hard ErrMalformed, not a
// try-the-next-scheme ErrNoMatch.
func (s *SplitScheme) Parse(versionStr string) ([]string, error) {
	if versionStr == "" {
		return nil, fmt.Errorf("%w %q", ErrNoMatch, s.name)
	}
	segments := s.delimiter.Split(versionStr, -1)
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrMalformed, versionStr)
		}
		if !s.segment.MatchString(segment) {
			return nil, fmt.Errorf("%w %q", ErrNoMatch, s.name)
		}
	}
	return segments, nil
}

// Format implements Scheme.
func (s *SplitScheme) Format(parts []string) string {
	return strings.Join(parts, s.separator)
}

// ClearValue implements Scheme.
func (s *SplitScheme) ClearValue() string { return s.clearValue }

// ExtendValue implements Scheme.
func (s *SplitScheme) ExtendValue() string { return s.extendValue }
