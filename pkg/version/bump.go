// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/datawire/versio/pkg/scheme"
)

// Bump increments the named field by one and resets every field to its
// right to the scheme's clear value.  An empty fieldName bumps the least
// significant field.  The name may also be a registered subfield
// ("Minor" inside a composite "Release"), which bumps the owning field
// at the subfield's position.
//
// The return value reports whether the version actually changed: an
// unknown name, or a sequence-valued field already at the end of its
// sequence, leaves the version alone and returns false.
func (v *Version) Bump(fieldName string) bool {
	if fieldName == "" {
		return v.bumpDefault()
	}
	return v.bump(fieldName, -1, false)
}

// BumpSub is Bump targeting one dotted sub-part of the field: bumping
// ("Release", 1) turns "1.2.3" into "1.3.0".  Sub-parts to the right of
// subIndex reset to zero; an out-of-range subIndex returns false.
func (v *Version) BumpSub(fieldName string, subIndex int) bool {
	return v.bump(fieldName, subIndex, false)
}

// Promote graduates a version toward its next more-stable form: if the
// named field is at (or past) the end of its discrete sequence, or is
// absent entirely, the field is dropped and Promote returns true.
// Fields to the right are left alone.  Otherwise the field advances
// along its sequence as with Bump.
func (v *Version) Promote(fieldName string) bool {
	return v.bump(fieldName, 0, true)
}

// BumpIndex increments the segment at a zero-based index of a
// split-scheme version, extending the version with clear values first
// when the index is past the end, and resets every segment to the
// right.  It returns false for fixed-field schemes and for a
// non-numeric segment.
func (v *Version) BumpIndex(index int) bool {
	if _, ok := v.scheme.(*scheme.SplitScheme); !ok || index < 0 {
		return false
	}
	for len(v.parts) <= index {
		v.parts = append(v.parts, v.scheme.ClearValue())
	}
	n, err := strconv.Atoi(v.parts[index])
	if err != nil {
		return false
	}
	v.parts[index] = strconv.Itoa(n + 1)
	for i := index + 1; i < len(v.parts); i++ {
		v.parts[i] = v.scheme.ClearValue()
	}
	return true
}

// bumpDefault bumps the least significant part: the last declared field
// of a field scheme, or the last segment of a split scheme.
func (v *Version) bumpDefault() bool {
	if fs, ok := v.scheme.(*scheme.FieldScheme); ok {
		fields := fs.Fields()
		return v.bump(fields[len(fields)-1], -1, false)
	}
	n, err := strconv.Atoi(v.parts[len(v.parts)-1])
	if err != nil {
		return false
	}
	v.parts[len(v.parts)-1] = strconv.Itoa(n + 1)
	return true
}

func (v *Version) bump(fieldName string, subIndex int, promote bool) bool {
	fs, ok := v.scheme.(*scheme.FieldScheme)
	if !ok {
		return false
	}
	idx, ok := fs.FieldIndex(fieldName)
	if !ok {
		parent, sub, ok := fs.Subfield(fieldName)
		if !ok {
			return false
		}
		return v.bump(parent, sub, promote)
	}

	field := strings.ToLower(fieldName)
	part := v.parts[idx]

	if part == "" {
		// Absent optional segment.
		if promote {
			// Already as stable as this field gets.
			v.parts[idx] = fs.ClearValue()
			return true
		}
		newPart, status := instantiatePart(fs, field)
		if status != bumpOK {
			return false
		}
		v.parts[idx] = newPart
		v.clearRight(idx)
		return true
	}

	newPart, status := bumpPart(fs, field, part, subIndex)
	switch status {
	case bumpOK:
		v.parts[idx] = newPart
		v.clearRight(idx)
		return newPart != part
	case bumpExhausted:
		if promote {
			// Drop the segment; fields to the right survive.
			v.parts[idx] = fs.ClearValue()
			return true
		}
		return false
	default:
		return false
	}
}

func (v *Version) clearRight(idx int) {
	for i := idx + 1; i < len(v.parts); i++ {
		v.parts[i] = v.scheme.ClearValue()
	}
}

type bumpStatus int

const (
	bumpOK bumpStatus = iota
	// bumpExhausted means the field's discrete sequence has no next
	// value, or the targeted sub-part does not exist.
	bumpExhausted
	// bumpInvalid means the field cannot be bumped at all, e.g. a
	// sub-sequence bump on a field with no declared sequence.
	bumpInvalid
)

var (
	reDottedNumeric = regexp.MustCompile(`^\d+(?:\.\d+)*$`)
	rePrefixNumber  = regexp.MustCompile(`^(\.?[a-zA-Z+]*)(\d+)`)
)

// instantiatePart builds a first value for a field that has never been
// present, e.g. an absent Pre becomes "a1".
func instantiatePart(fs *scheme.FieldScheme, field string) (string, bumpStatus) {
	seq := fs.Sequence(field)
	if len(seq) == 0 {
		return "", bumpInvalid
	}
	start := fs.ClearValue()
	if start == "" {
		start = "1"
	}
	return seq[0] + start, bumpOK
}

// bumpPart re-derives one field's textual value.  Exactly two shapes
// are recognized, tried in order; anything else is returned unchanged.
func bumpPart(fs *scheme.FieldScheme, field, part string, subIndex int) (string, bumpStatus) {
	if reDottedNumeric.MatchString(part) {
		return bumpDotted(fs, part, subIndex)
	}
	if m := rePrefixNumber.FindStringSubmatch(part); m != nil {
		return bumpPrefixed(fs, field, m[1], m[2], subIndex)
	}
	return part, bumpOK
}

// bumpDotted increments a dotted-numeric value like "1.2.3" at
// subIndex (default: the last sub-part) and zeroes the sub-parts to its
// right.
func bumpDotted(fs *scheme.FieldScheme, part string, subIndex int) (string, bumpStatus) {
	subs := strings.Split(part, ".")
	nums := make([]int, len(subs))
	for i, sub := range subs {
		n, err := strconv.Atoi(sub)
		if err != nil {
			return "", bumpInvalid
		}
		nums[i] = n
	}
	target := subIndex
	if target < 0 {
		target = len(nums) - 1
	}
	if target >= len(nums) {
		return "", bumpExhausted
	}
	nums[target]++
	clear := 0
	if cv := fs.ClearValue(); cv != "" {
		n, err := strconv.Atoi(cv)
		if err != nil {
			return "", bumpInvalid
		}
		clear = n
	}
	if subIndex >= 0 {
		for i := target + 1; i < len(nums); i++ {
			nums[i] = clear
		}
	}
	out := make([]string, len(nums))
	for i, n := range nums {
		out[i] = strconv.Itoa(n)
	}
	return strings.Join(out, "."), bumpOK
}

// bumpPrefixed increments a prefix+number value like "a4" or ".post5".
// subIndex 0 targets the prefix, advancing it along the field's
// declared sequence and resetting the number; any other subIndex
// increments the number.
func bumpPrefixed(fs *scheme.FieldScheme, field, prefix, number string, subIndex int) (string, bumpStatus) {
	n, err := strconv.Atoi(number)
	if err != nil {
		return "", bumpInvalid
	}
	if subIndex != 0 {
		return prefix + strconv.Itoa(n+1), bumpOK
	}

	seq := fs.Sequence(field)
	if len(seq) == 0 {
		return "", bumpInvalid
	}
	next := ""
	if prefix == "" {
		next = seq[0]
	} else {
		at := -1
		for i, s := range seq {
			if s == prefix {
				at = i
				break
			}
		}
		if at < 0 || at+1 >= len(seq) {
			return "", bumpExhausted
		}
		next = seq[at+1]
	}
	start := fs.ClearValue()
	if start == "" {
		start = "1"
	}
	return next + start, bumpOK
}
