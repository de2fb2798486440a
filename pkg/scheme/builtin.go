// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package scheme

import (
	"github.com/dlclark/regexp2"
)

// Simple3 is a plain 3-part numeric "Major.Minor.Tiny" scheme.
var Simple3 = MustFieldScheme(FieldConfig{
	Name:           "A.B.C",
	ParsePattern:   `^(\d+)\.(\d+)\.(\d+)$`,
	FormatTemplate: "%s.%s.%s",
	Fields:         []string{"Major", "Minor", "Tiny"},
	ClearValue:     "0",
	Description:    "Simple Major.Minor.Tiny version scheme",
})

// Simple4 is a plain 4-part numeric "Major.Minor.Tiny.Tiny2" scheme.
var Simple4 = MustFieldScheme(FieldConfig{
	Name:           "A.B.C.D",
	ParsePattern:   `^(\d+)\.(\d+)\.(\d+)\.(\d+)$`,
	FormatTemplate: "%s.%s.%s.%s",
	Fields:         []string{"Major", "Minor", "Tiny", "Tiny2"},
	ClearValue:     "0",
	Description:    "Simple Major.Minor.Tiny.Tiny2 version scheme",
})

// Simple5 is a plain 5-part numeric "Major.Minor.Tiny.Tiny2.Tiny3"
// scheme.
var Simple5 = MustFieldScheme(FieldConfig{
	Name:           "A.B.C.D.E",
	ParsePattern:   `^(\d+)\.(\d+)\.(\d+)\.(\d+)\.(\d+)$`,
	FormatTemplate: "%s.%s.%s.%s.%s",
	Fields:         []string{"Major", "Minor", "Tiny", "Tiny2", "Tiny3"},
	ClearValue:     "0",
	Description:    "Simple Major.Minor.Tiny.Tiny2.Tiny3 version scheme",
})

// PEP440 is the public-version-identifier scheme of Python's PEP 440:
//
//	N[.N]+[{a|b|c|rc}N][.postN][.devN][+local]
//
// The release segment has variable dotted depth; the pre, post, dev, and
// local segments are optional.  An absent field is the empty string.  The
// '~' compare fills make an absent release or pre segment sort above any
// present value ('~' is above every alphanumeric in ASCII), so "1.0a1"
// orders before "1.0".
var PEP440 = MustFieldScheme(FieldConfig{
	Name: "pep440",
	ParsePattern: `
		^
		(\d[\.\d]*(?<= \d))
		((?:[abc]|rc)\d+)?
		(?:(\.post\d+))?
		(?:(\.dev\d+))?
		(?:(\+[a-zA-Z\d]+(?:\.[a-zA-Z\d]+)*))?
		$
	`,
	ParseFlags:     regexp2.IgnorePatternWhitespace,
	FormatTemplate: "%s%s%s%s%s",
	Fields:         []string{"Release", "Pre", "Post", "Dev", "Local"},
	Subfields: map[string][]string{
		"Release": {"Major", "Minor", "Tiny", "Tiny2"},
	},
	Sequences: map[string][]string{
		"Pre":   {"a", "b", "c", "rc"},
		"Post":  {".post"},
		"Dev":   {".dev"},
		"Local": {"+"},
	},
	CompareOrder: []int{0, 1, 2, 3, 4},
	CompareFill:  []string{"~", "~", "", "", ""},
	Description: `PEP 440
Public version identifiers MUST comply with the following scheme:

N[.N]+[{a|b|c|rc}N][.postN][.devN][+local]

Public version identifiers MUST NOT include leading or trailing whitespace.

Public version identifiers MUST be unique within a given distribution.

Public version identifiers are separated into up to five segments:

    Release segment: N[.N]+
    Pre-release segment: {a|b|c|rc}N
    Post-release segment: .postN
    Development release segment: .devN
    Local version segment: +local`,
})

// Perl is a 2-part "Major.Minor" scheme whose minor part always renders
// zero-padded to at least two digits, so "1.2" formats as "1.02".
var Perl = MustFieldScheme(FieldConfig{
	Name:           "A.B",
	ParsePattern:   `^(\d+)\.(\d+)$`,
	FormatTemplate: "%s.%s",
	FieldTypes: []FieldType{
		{Int: true},
		{Width: 2},
	},
	Fields:      []string{"Major", "Minor"},
	ClearValue:  "0",
	Description: "perl Major.Minor version scheme",
})

// VariableDotted is a dotted-integer scheme with no fixed number of
// parts: "1", "1.2", "1.2.3.4.5", and so on.
var VariableDotted = MustSplitScheme(SplitConfig{
	Name:             "A.B...",
	SegmentPattern:   `\d+`,
	DelimiterPattern: `\.`,
	Separator:        ".",
	ClearValue:       "0",
	Description:      "Simple variable dotted integer version scheme",
})
