package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := New(dir)
	assert.Equal(t, filepath.Join(dir, DefaultFileName), s.Path())

	_, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Set("chk-drc", "checked"))

	v, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.Remove("chk-drc"))
	require.NoError(t, s.Remove("never-set"))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(b))
}

func TestStore_SharedFile(t *testing.T) {
	dir := t.TempDir()
	a, b := New(dir), New(dir)

	require.NoError(t, a.Set("theme", "light"))
	v, ok, err := b.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("{not json"), 0o644))

	_, _, err := New(dir).Get("theme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")
}
