package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(20)
	require.NoError(t, err)
	assert.Len(t, s, 20)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(randomCharset, r), "beklenmeyen karakter: %q", r)
	}

	// Ardışık üretimler pratikte çakışmamalı.
	other, err := GenerateSecureRandomString(20)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)

	empty, err := GenerateSecureRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
