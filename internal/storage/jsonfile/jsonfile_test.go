package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAbsent(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	data, ok, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestWriteThenRead(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	want := []byte(`[{"id":"a","title":"Buy milk","completed":false}]`)
	require.NoError(t, s.Write(ctx, want))

	got, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestWriteReplacesWholeValue(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, []byte("a much longer first snapshot value")))
	require.NoError(t, s.Write(ctx, []byte("[]")))

	got, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("[]"), got)
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), []byte("[]")))

	_, err = os.Stat(filepath.Join(dir, dataFileName+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "taskpad")

	_, err := Open(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestTwoSlotsShareTheFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a, err := Open(dir)
	require.NoError(t, err)
	b, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, a.Write(ctx, []byte(`["written by a"]`)))

	got, ok, err := b.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`["written by a"]`), got)
}
