package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MintsScopedToken(t *testing.T) {
	s := NewStore()

	token, err := s.Generate(7, FeatureFlags{ContextUsage: true})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	rec, ok := s.Validate(token)
	require.True(t, ok)
	assert.Equal(t, 7, rec.AgentID)
	assert.True(t, rec.Flags.ContextUsage)
	assert.False(t, rec.Flags.FileUpload)

	_, ok = s.ValidateForAgent(token, 7)
	assert.True(t, ok)
	_, ok = s.ValidateForAgent(token, 8)
	assert.False(t, ok, "a token opens exactly one agent")
}

func TestGenerate_RevokesPrevious(t *testing.T) {
	s := NewStore()

	first, err := s.Generate(3, FeatureFlags{})
	require.NoError(t, err)
	second, err := s.Generate(3, FeatureFlags{})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, ok := s.Validate(first)
	assert.False(t, ok, "regeneration invalidates the old token")
	_, ok = s.Validate(second)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestRevoke(t *testing.T) {
	s := NewStore()
	token, err := s.Generate(1, FeatureFlags{})
	require.NoError(t, err)

	s.Revoke(token)
	_, ok := s.Validate(token)
	assert.False(t, ok)
	assert.Zero(t, s.Len())

	// Revoking twice is harmless.
	s.Revoke(token)
}

func TestRevokeForAgent(t *testing.T) {
	s := NewStore()
	_, err := s.Generate(1, FeatureFlags{})
	require.NoError(t, err)
	keep, err := s.Generate(2, FeatureFlags{})
	require.NoError(t, err)

	s.RevokeForAgent(1)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Validate(keep)
	assert.True(t, ok, "other agents' tokens survive")

	s.RevokeForAgent(99)
	assert.Equal(t, 1, s.Len())
}
