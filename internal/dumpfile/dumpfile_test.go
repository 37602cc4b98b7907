package dumpfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	data := []byte("Bucket 0: Empty\nBucket 1: apple: 10")

	require.NoError(t, Write(path, data))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, b)
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")

	require.NoError(t, Write(path, []byte("a much longer first dump")))
	require.NoError(t, Write(path, []byte("short")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "short", string(b))
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")

	require.NoError(t, Write(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestWriteMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dump.txt")
	require.Error(t, Write(path, []byte("x")))
}
