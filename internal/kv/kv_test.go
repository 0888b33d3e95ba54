package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestBolt(t *testing.T) (*Bolt, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")
	b, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b, path
}

func testStore(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("randomize", []byte("true")))
	v, ok, err := s.Get("randomize")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", string(v))

	require.NoError(t, s.Put("randomize", []byte("false")))
	v, _, err = s.Get("randomize")
	require.NoError(t, err)
	assert.Equal(t, "false", string(v))

	require.NoError(t, s.Delete("randomize"))
	_, ok, err = s.Get("randomize")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Delete("never-set"))
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestBolt(t *testing.T) {
	b, _ := openTestBolt(t)
	testStore(t, b)
}

func TestBolt_PersistsAcrossReopen(t *testing.T) {
	b, path := openTestBolt(t)
	require.NoError(t, b.Put("current_puzzle_index", []byte("12")))
	require.NoError(t, b.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("current_puzzle_index")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "12", string(v))

	keys, err := reopened.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"current_puzzle_index"}, keys)
}

func TestBolt_Closed(t *testing.T) {
	var b *Bolt
	_, _, err := b.Get("k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, b.Put("k", nil), ErrClosed)
	assert.NoError(t, b.Close())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Put("k", buf))
	buf[0] = 'x'

	v, _, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v))
}
