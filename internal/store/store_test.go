package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	var s Memory

	_, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "dark"))
	v, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.Remove("theme"))
	require.NoError(t, s.Remove("theme"))
	assert.Empty(t, s.Snapshot())
}

func TestNewMemoryCopiesSeed(t *testing.T) {
	seed := map[string]string{"a": "1"}
	s := NewMemory(seed)
	require.NoError(t, s.Set("b", "2"))

	assert.Equal(t, map[string]string{"a": "1"}, seed)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, s.Snapshot())
}
