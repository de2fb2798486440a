// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package compare implements the derived-key ordering used by version
// schemes.
//
// A comparison key is an ordered list of scalar elements, each of which is
// either a non-negative integer or an opaque string.  Keys compare position
// by position; at each position numeric comparison takes precedence, and
// string comparison is the fallback when either side is non-numeric.
// Version components are arbitrary-precision integers, so numeric elements
// are kept as canonical digit strings and compared by magnitude rather than
// squeezed into a machine word.
package compare

import (
	"strings"
)

// Elem is one scalar element of a comparison key.
type Elem struct {
	str     string
	numeric bool
}

// Parse classifies s: a non-empty string consisting entirely of ASCII
// digits, optionally preceded by a single "+", becomes a numeric element
// (sign and leading zeros dropped), anything else becomes a string
// element.  The "+" form arises from local segments, whose first dotted
// component carries the separator; "+9" and "+10" must compare as 9 and
// 10.
func Parse(s string) Elem {
	digits := strings.TrimPrefix(s, "+")
	if isDigits(digits) {
		return Elem{str: canonDigits(digits), numeric: true}
	}
	return Elem{str: s}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func canonDigits(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// IsNumeric reports whether the element holds an integer.
func (e Elem) IsNumeric() bool { return e.numeric }

// String implements fmt.Stringer.  Numeric elements render in canonical
// form, without leading zeros.
func (e Elem) String() string { return e.str }

// Cmp returns a number < 0 if a is less than b, > 0 if a is greater than
// b, or 0 if they are equal.  When both elements are numeric they compare
// by integer magnitude; otherwise both compare as strings.
func Cmp(a, b Elem) int {
	if a.numeric && b.numeric {
		return cmpDigits(a.str, b.str)
	}
	return strings.Compare(a.str, b.str)
}

// cmpDigits compares two canonical (no leading zero) digit strings by
// magnitude: a longer string is a bigger number, equal lengths compare
// lexicographically.
func cmpDigits(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Key is a whole comparison key.
type Key []Elem

// Keys compares two keys position by position, deciding at the first
// position where the elements differ.  The shorter key is padded with fill
// so that a trailing length difference cannot decide the result before
// element comparison does.
func Keys(a, b Key, fill Elem) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		x, y := fill, fill
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if d := Cmp(x, y); d != 0 {
			return d
		}
	}
	return 0
}
