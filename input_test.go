package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02.txt"), []byte("11-22\n"), 0644))

	b, err := DirSource(dir).Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "11-22\n", string(b))

	_, err = DirSource(dir).Load(context.Background(), 3)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCOSEnabled(t *testing.T) {
	var nilCOS *COS
	assert.False(t, nilCOS.Enabled())
	assert.False(t, (&COS{EndPoint: "play.min.io"}).Enabled())
	assert.True(t, (&COS{EndPoint: "play.min.io", BucketName: "inputs"}).Enabled())
}
