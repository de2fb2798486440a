// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/datawire/versio/pkg/compare"
	"github.com/datawire/versio/pkg/scheme"
)

// ErrNotComparable reports that the right-hand side of a comparison
// could not be coerced to a Version.
var ErrNotComparable = errors.New("not comparable")

// compareKey flattens the version into ordered comparison elements.
//
// Fields are permuted by the scheme's compare order, absent fields
// become their declared fill sentinel, and present fields contribute
// one element per dotted sub-part.  When the counterpart version has
// more dotted sub-parts in the same field, the key is extended with the
// scheme's extend value so "1.0" compares to "1.0.1" component-wise
// rather than by length.
func (v *Version) compareKey(other *Version) compare.Key {
	parts := append([]string(nil), v.parts...)
	var fills []string
	if fs, ok := v.scheme.(*scheme.FieldScheme); ok {
		for i, from := range fs.CompareOrder() {
			parts[i] = v.parts[from]
		}
		fills = fs.CompareFill()
	}

	var key compare.Key
	for i, part := range parts {
		if part == "" {
			fill := ""
			if i < len(fills) {
				fill = fills[i]
			}
			key = append(key, compare.Parse(fill))
			continue
		}
		subs := strings.Split(part, ".")
		for _, sub := range subs {
			if sub != "" {
				key = append(key, compare.Parse(sub))
			}
		}
		if other == nil || i >= len(other.parts) || other.parts[i] == "" {
			continue
		}
		extra := len(strings.Split(other.parts[i], ".")) - len(subs)
		for ; extra > 0; extra-- {
			key = append(key, compare.Parse(v.scheme.ExtendValue()))
		}
	}
	return key
}

// Cmp compares two versions, returning -1, 0, or 1.  Each side's key is
// built with the other side in view so that dotted sub-part counts
// reconcile symmetrically.
func (v *Version) Cmp(other *Version) int {
	return compare.Keys(
		v.compareKey(other),
		other.compareKey(v),
		compare.Parse(v.scheme.ClearValue()),
	)
}

// Compare compares v against other, which may be a *Version, a Version,
// a string, or anything with a String method.  A non-Version right-hand
// side is parsed with v's own scheme first; if that parse fails the
// result is an error wrapping ErrNotComparable.
func (v *Version) Compare(other interface{}) (int, error) {
	rhs, err := v.coerce(other)
	if err != nil {
		return 0, err
	}
	return v.Cmp(rhs), nil
}

func (v *Version) coerce(other interface{}) (*Version, error) {
	switch o := other.(type) {
	case *Version:
		return o, nil
	case Version:
		return &o, nil
	case string:
		rhs, err := ParseAs(o, v.scheme)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotComparable, err)
		}
		return rhs, nil
	case fmt.Stringer:
		return v.coerce(o.String())
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotComparable, other)
	}
}

// holds reports whether the relation op holds between v and other.  An
// incomparable right-hand side satisfies only NotEqual.
func (v *Version) holds(op compare.Op, other interface{}) bool {
	d, err := v.Compare(other)
	if err != nil {
		return op == compare.NotEqual
	}
	return op.Holds(d)
}

// Less reports v < other.
func (v *Version) Less(other interface{}) bool {
	return v.holds(compare.Less, other)
}

// LessEqual reports v <= other.
func (v *Version) LessEqual(other interface{}) bool {
	return v.holds(compare.LessOrEqual, other)
}

// Equal reports v == other.
func (v *Version) Equal(other interface{}) bool {
	return v.holds(compare.Equal, other)
}

// GreaterEqual reports v >= other.
func (v *Version) GreaterEqual(other interface{}) bool {
	return v.holds(compare.GreaterOrEqual, other)
}

// Greater reports v > other.
func (v *Version) Greater(other interface{}) bool {
	return v.holds(compare.Greater, other)
}

// NotEqual reports v != other.
func (v *Version) NotEqual(other interface{}) bool {
	return v.holds(compare.NotEqual, other)
}
