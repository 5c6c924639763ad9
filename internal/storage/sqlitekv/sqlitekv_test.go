package sqlitekv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAbsent(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	data, ok, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestWriteThenRead(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	want := []byte(`[{"id":"a","title":"Buy milk","completed":false}]`)
	require.NoError(t, s.Write(ctx, want))

	got, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestWriteReplacesWholeValue(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, []byte("first, rather long value")))
	require.NoError(t, s.Write(ctx, []byte("[]")))

	got, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("[]"), got)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	s, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, []byte(`["survives"]`)))
	require.NoError(t, s.Close())

	s, err = Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`["survives"]`), got)
}
