// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/versio/pkg/scheme"
	"github.com/datawire/versio/pkg/version"
)

// builtinParser tries every built-in scheme, unlike the ambient default
// which is PEP 440 only.
var builtinParser = version.Parser{Registry: scheme.Builtin()}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Scheme scheme.Scheme
		Input  string
	}
	testcases := map[string]TestCase{
		"simple3":         {scheme.Simple3, "1.2.3"},
		"simple4":         {scheme.Simple4, "1.2.3.4"},
		"simple5":         {scheme.Simple5, "1.2.3.4.5"},
		"pep440-release":  {scheme.PEP440, "1.2"},
		"pep440-pre":      {scheme.PEP440, "1.2.3a4"},
		"pep440-kitchen":  {scheme.PEP440, "1.2.3.dev6+1a.2b.3c"},
		"pep440-post-dev": {scheme.PEP440, "1.2rc3.post4.dev5"},
		"perl":            {scheme.Perl, "1.02"},
		"perl-wide":       {scheme.Perl, "10.302"},
		"variable":        {scheme.VariableDotted, "1.2.3.4.5.6.7"},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			v, err := version.ParseAs(tcData.Input, tcData.Scheme)
			require.NoError(t, err)
			assert.Equal(t, tcData.Input, v.String())
			assert.Equal(t, tcData.Scheme.Name(), v.Scheme().Name())
		})
	}
}

func TestParseInference(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Input      string
		SchemeName string // empty for unparseable
	}
	testcases := map[string]TestCase{
		"three-part":   {"1.2.3", "A.B.C"},
		"four-part":    {"1.2.3.4", "A.B.C.D"},
		"five-part":    {"1.2.3.4.5", "A.B.C.D.E"},
		"pep440":       {"1.2.3a4", "pep440"},
		"two-part":     {"1.2", "pep440"},
		// The PEP 440 release segment has unbounded depth, so any pure
		// dotted-numeric version that the fixed-arity schemes pass on
		// lands there rather than in the variable dotted scheme.
		"six-part":     {"1.2.3.4.5.6", "pep440"},
		"unparseable":  {"not-a-version", ""},
		"empty-string": {"", ""},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			v, err := builtinParser.Parse(tcData.Input)
			if tcData.SchemeName == "" {
				assert.ErrorIs(t, err, version.ErrUnparseable)
				assert.Contains(t, err.Error(), tcData.Input)
				assert.Nil(t, v)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tcData.SchemeName, v.Scheme().Name())
				assert.Equal(t, tcData.Input, v.String())
			}
		})
	}
}

func TestParseMalformedAborts(t *testing.T) {
	t.Parallel()
	// "1.2.3.4.5.6." only comes close to matching the variable dotted
	// scheme, and for that scheme a trailing dot is malformed rather
	// than a near-miss, so inference reports the malformation instead
	// of unparseability.
	v, err := builtinParser.Parse("1.2.3.4.5.6.")
	assert.ErrorIs(t, err, scheme.ErrMalformed)
	assert.Nil(t, v)
}

//nolint:paralleltest // mutates the process-wide ambient registry
func TestSupportedSchemes(t *testing.T) {
	orig := version.SupportedSchemes()
	defer func() { version.SetSupportedSchemes(orig...) }()

	// Default is PEP 440 only.
	require.Len(t, orig, 1)
	assert.Equal(t, "pep440", orig[0].Name())

	_, err := version.Parse("1.2.3a4")
	assert.NoError(t, err)
	// PEP 440's release segment has unbounded depth, so any dotted
	// numeric parses; a bogus suffix is needed to get a rejection.
	_, err = version.Parse("1.2.3a4.foo")
	assert.ErrorIs(t, err, version.ErrUnparseable)

	version.SetSupportedSchemes(scheme.Simple3, scheme.VariableDotted)
	v, err := version.Parse("1.2.3.4.5.6")
	require.NoError(t, err)
	assert.Equal(t, "A.B...", v.Scheme().Name())
	_, err = version.Parse("1.2.3a4")
	assert.ErrorIs(t, err, version.ErrUnparseable)
}

func TestClone(t *testing.T) {
	t.Parallel()

	v, err := version.ParseAs("1.2.3", scheme.Simple3)
	require.NoError(t, err)

	clone := v.Clone()
	require.True(t, clone.Bump("Minor"))
	assert.Equal(t, "1.3.0", clone.String())
	assert.Equal(t, "1.2.3", v.String())
}

func TestUnknownVersion(t *testing.T) {
	t.Parallel()

	var v version.Version
	assert.Equal(t, "Unknown version", v.String())
	assert.Equal(t, "Unknown version", (*version.Version)(nil).String())
}

func TestParts(t *testing.T) {
	t.Parallel()

	v, err := version.ParseAs("1.2.3a4", scheme.PEP440)
	require.NoError(t, err)

	parts := v.Parts()
	assert.Equal(t, []string{"1.2.3", "a4", "", "", ""}, parts)

	// Parts is a copy; scribbling on it must not affect the version.
	parts[0] = "9.9.9"
	assert.Equal(t, "1.2.3a4", v.String())
}
