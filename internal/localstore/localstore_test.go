package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"))

	framed := c.Encode([]byte(`{"items":[]}`))
	payload, err := c.Decode(framed)
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(payload))
}

func TestCodecRejectsTampering(t *testing.T) {
	c := NewCodec([]byte("secret"))
	framed := c.Encode([]byte("hello"))

	_, err := c.Decode([]byte("no-dot-here"))
	assert.ErrorIs(t, err, ErrInvalid)

	tampered := append([]byte("x"), framed...)
	_, err = c.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalid)

	other := NewCodec([]byte("another-secret"))
	_, err = other.Decode(framed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFileStoreRoundTrip(t *testing.T) {
	f := NewFile(t.TempDir(), []byte("secret"))

	_, ok, err := f.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.Set("cart", []byte("payload")))

	got, ok, err := f.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "payload", string(got))

	require.NoError(t, f.Delete("cart"))
	_, ok, err = f.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again stays a no-op.
	require.NoError(t, f.Delete("cart"))
}

func TestFileStoreCorruptFileReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir, []byte("secret"))
	require.NoError(t, f.Set("cart", []byte("payload")))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.dat"), []byte("garbage"), 0o644))

	_, ok, err := f.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore(t *testing.T) {
	m := NewMem()

	require.NoError(t, m.Set("cart", []byte("a")))
	got, ok, err := m.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", string(got))

	// The stored value is isolated from later caller mutations.
	got[0] = 'z'
	again, _, _ := m.Get("cart")
	assert.Equal(t, "a", string(again))

	require.NoError(t, m.Delete("cart"))
	_, ok, _ = m.Get("cart")
	assert.False(t, ok)
}
