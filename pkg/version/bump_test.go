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

func TestBump(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Scheme   scheme.Scheme
		Input    string
		Field    string
		Expected string // empty means "no change reported"
	}
	testcases := map[string]TestCase{
		"simple3-tiny":    {scheme.Simple3, "1.2.3", "Tiny", "1.2.4"},
		"simple3-minor":   {scheme.Simple3, "1.2.3", "Minor", "1.3.0"},
		"simple3-major":   {scheme.Simple3, "1.2.3", "Major", "2.0.0"},
		"simple3-default": {scheme.Simple3, "1.2.3", "", "1.2.4"},
		"simple3-case":    {scheme.Simple3, "1.2.3", "minor", "1.3.0"},
		"simple3-unknown": {scheme.Simple3, "1.2.3", "Build", ""},
		"simple4-tiny2":   {scheme.Simple4, "1.2.3.4", "Tiny2", "1.2.3.5"},
		"simple4-major":   {scheme.Simple4, "1.2.3.4", "Major", "2.0.0.0"},
		"simple5-tiny3":   {scheme.Simple5, "1.2.3.4.5", "Tiny3", "1.2.3.4.6"},
		"perl-minor":      {scheme.Perl, "1.02", "Minor", "1.03"},
		"perl-major":      {scheme.Perl, "1.02", "Major", "2.00"},

		"pep440-release":     {scheme.PEP440, "1.2.3a4.post5.dev6", "Release", "1.2.4"},
		"pep440-minor":       {scheme.PEP440, "1.2.3a4.post5.dev6", "Minor", "1.3.0"},
		"pep440-major":       {scheme.PEP440, "1.2.3a4.post5.dev6", "Major", "2.0.0"},
		"pep440-pre":         {scheme.PEP440, "1.2.3a4.post5.dev6", "Pre", "1.2.3a5"},
		"pep440-post":        {scheme.PEP440, "1.2.3a4.post5.dev6", "Post", "1.2.3a4.post6"},
		"pep440-dev":         {scheme.PEP440, "1.2.3a4.post5.dev6", "Dev", "1.2.3a4.post5.dev7"},
		"pep440-absent-pre":  {scheme.PEP440, "1.2.3", "Pre", "1.2.3a1"},
		"pep440-absent-post": {scheme.PEP440, "1.2.3", "Post", "1.2.3.post1"},
		"pep440-absent-dev":  {scheme.PEP440, "1.2.3", "Dev", "1.2.3.dev1"},
		"pep440-absent-loc":  {scheme.PEP440, "1.2.3", "Local", "1.2.3+1"},
		"pep440-local":       {scheme.PEP440, "1.2.3+7", "Local", "1.2.3+8"},
		"pep440-clears-all":  {scheme.PEP440, "1.2.3a4.post5.dev6+7", "Minor", "1.3.0"},
		"pep440-unknown":     {scheme.PEP440, "1.2.3a4", "Tiny3", ""},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			v, err := version.ParseAs(tcData.Input, tcData.Scheme)
			require.NoError(t, err)
			changed := v.Bump(tcData.Field)
			if tcData.Expected == "" {
				assert.False(t, changed)
				assert.Equal(t, tcData.Input, v.String())
			} else {
				assert.True(t, changed)
				assert.Equal(t, tcData.Expected, v.String())
			}
		})
	}
}

func TestBumpSub(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Scheme   scheme.Scheme
		Input    string
		Field    string
		SubIndex int
		Expected string
	}
	testcases := map[string]TestCase{
		"release-0":       {scheme.PEP440, "1.2.3", "Release", 0, "2.0.0"},
		"release-1":       {scheme.PEP440, "1.2.3", "Release", 1, "1.3.0"},
		"release-2":       {scheme.PEP440, "1.2.3", "Release", 2, "1.2.4"},
		"release-deep":    {scheme.PEP440, "1.2.3.4", "Release", 1, "1.3.0.0"},
		"release-oob":     {scheme.PEP440, "1.2.3", "Release", 3, ""},
		"pre-number":      {scheme.PEP440, "1.2.3a4", "Pre", 1, "1.2.3a5"},
		"pre-seq-a":       {scheme.PEP440, "1.2.3a4", "Pre", 0, "1.2.3b1"},
		"pre-seq-b":       {scheme.PEP440, "1.2.3b4", "Pre", 0, "1.2.3c1"},
		"pre-seq-c":       {scheme.PEP440, "1.2.3c4", "Pre", 0, "1.2.3rc1"},
		"pre-seq-end":     {scheme.PEP440, "1.2.3rc4", "Pre", 0, ""},
		"post-seq-end":    {scheme.PEP440, "1.2.3.post4", "Post", 0, ""},
		"dev-seq-end":     {scheme.PEP440, "1.2.3a4.dev6", "Dev", 0, ""},
		"simple3-via-sub": {scheme.Simple3, "1.2.3", "Minor", 0, "1.3.0"},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			v, err := version.ParseAs(tcData.Input, tcData.Scheme)
			require.NoError(t, err)
			changed := v.BumpSub(tcData.Field, tcData.SubIndex)
			if tcData.Expected == "" {
				assert.False(t, changed)
				assert.Equal(t, tcData.Input, v.String())
			} else {
				assert.True(t, changed)
				assert.Equal(t, tcData.Expected, v.String())
			}
		})
	}
}

// TestBumpPreCycle walks a version through a whole release cycle the way
// a release manager would.
func TestBumpPreCycle(t *testing.T) {
	t.Parallel()

	v, err := version.ParseAs("1.2.3", scheme.PEP440)
	require.NoError(t, err)

	require.True(t, v.Bump("Minor"))
	assert.Equal(t, "1.3.0", v.String())

	require.True(t, v.Bump("Pre"))
	assert.Equal(t, "1.3.0a1", v.String())
	require.True(t, v.Bump("Pre"))
	assert.Equal(t, "1.3.0a2", v.String())

	require.True(t, v.BumpSub("Pre", 0))
	assert.Equal(t, "1.3.0b1", v.String())
	require.True(t, v.BumpSub("Pre", 0))
	assert.Equal(t, "1.3.0c1", v.String())
	require.True(t, v.BumpSub("Pre", 0))
	assert.Equal(t, "1.3.0rc1", v.String())

	// The sequence is exhausted; only promotion remains.
	require.False(t, v.BumpSub("Pre", 0))
	assert.Equal(t, "1.3.0rc1", v.String())

	require.True(t, v.Promote("Pre"))
	assert.Equal(t, "1.3.0", v.String())
}

func TestPromote(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Input    string
		Field    string
		Changed  bool
		Expected string
	}
	testcases := map[string]TestCase{
		"pre-mid-sequence": {"1.2.3a4", "Pre", true, "1.2.3b1"},
		"pre-at-end":       {"1.2.3rc4", "Pre", true, "1.2.3"},
		"pre-absent":       {"1.2.3", "Pre", true, "1.2.3"},
		"dev-at-end":       {"1.2.3.dev4", "Dev", true, "1.2.3"},
		"post-at-end":      {"1.2.3.post4", "Post", true, "1.2.3"},
		"unknown-field":    {"1.2.3", "Bogus", false, "1.2.3"},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			v, err := version.ParseAs(tcData.Input, scheme.PEP440)
			require.NoError(t, err)
			assert.Equal(t, tcData.Changed, v.Promote(tcData.Field))
			assert.Equal(t, tcData.Expected, v.String())
		})
	}
}

// Promoting an exhausted pre-release must not disturb segments to its
// right; dropping the rc tag keeps the dev tag.
func TestPromoteKeepsRight(t *testing.T) {
	t.Parallel()

	v, err := version.ParseAs("1.2.3rc1.dev4", scheme.PEP440)
	require.NoError(t, err)
	require.True(t, v.Promote("Pre"))
	assert.Equal(t, "1.2.3.dev4", v.String())
}

func TestBumpIndex(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Input    string
		Index    int
		Expected string // empty means "no change reported"
	}
	testcases := map[string]TestCase{
		"last":     {"1.2.3", 2, "1.2.4"},
		"middle":   {"1.2.3", 1, "1.3.0"},
		"first":    {"1.2.3", 0, "2.0.0"},
		"extend-1": {"1.2.3", 3, "1.2.3.1"},
		"extend-n": {"1.2.3", 5, "1.2.3.0.0.1"},
		"negative": {"1.2.3", -1, ""},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			v, err := version.ParseAs(tcData.Input, scheme.VariableDotted)
			require.NoError(t, err)
			changed := v.BumpIndex(tcData.Index)
			if tcData.Expected == "" {
				assert.False(t, changed)
				assert.Equal(t, tcData.Input, v.String())
			} else {
				assert.True(t, changed)
				assert.Equal(t, tcData.Expected, v.String())
			}
		})
	}

	t.Run("fixed-field-scheme", func(t *testing.T) {
		t.Parallel()
		v, err := version.ParseAs("1.2.3", scheme.Simple3)
		require.NoError(t, err)
		assert.False(t, v.BumpIndex(1))
		assert.Equal(t, "1.2.3", v.String())
	})
}

func TestBumpSplitDefault(t *testing.T) {
	t.Parallel()

	v, err := version.ParseAs("1.2.9", scheme.VariableDotted)
	require.NoError(t, err)
	require.True(t, v.Bump(""))
	assert.Equal(t, "1.2.10", v.String())

	// Named fields only make sense for fixed-field schemes.
	assert.False(t, v.Bump("Major"))
	assert.Equal(t, "1.2.10", v.String())
}
