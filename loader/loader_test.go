package loader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.csv")
		assert.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o600))

		src, err := New().Open(ctx, path)
		assert.NoError(t, err)
		defer src.Close()

		data, err := io.ReadAll(src)
		assert.NoError(t, err)
		assert.Equal(t, "a,b\n", string(data))
		assert.Equal(t, "input.csv", src.Name)
		assert.True(t, filepath.IsAbs(src.Path))
	})

	t.Run("StripsUTF8BOM", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bom.csv")
		assert.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfP,1\n"), 0o600))

		src, err := New().Open(ctx, path)
		assert.NoError(t, err)
		defer src.Close()

		data, err := io.ReadAll(src)
		assert.NoError(t, err)
		assert.Equal(t, "P,1\n", string(data))
	})

	t.Run("DecodesUTF16WithBOM", func(t *testing.T) {
		src, err := New(WithStdin(strings.NewReader("\xff\xfea\x00,\x00b\x00"))).Open(ctx, StdinName)
		assert.NoError(t, err)

		data, err := io.ReadAll(src)
		assert.NoError(t, err)
		assert.Equal(t, "a,b", string(data))
	})

	t.Run("Stdin", func(t *testing.T) {
		src, err := New(WithStdin(strings.NewReader("x,y\n"))).Open(ctx, StdinName)
		assert.NoError(t, err)
		assert.Equal(t, "<stdin>", src.Name)
		assert.NoError(t, src.Close())

		data, err := io.ReadAll(src)
		assert.NoError(t, err)
		assert.Equal(t, "x,y\n", string(data))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := New().Open(ctx, filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open")
	})

	t.Run("CloseTwice", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "twice.csv")
		assert.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o600))

		src, err := New().Open(ctx, path)
		assert.NoError(t, err)
		assert.NoError(t, src.Close())
		assert.NoError(t, src.Close())
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := New().Open(cancelled, "-")
		assert.Error(t, err)
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "<stdin>", DisplayName("-"))
	assert.Equal(t, "<stdin>", DisplayName(""))
	assert.Equal(t, "deposits.csv", DisplayName(filepath.Join("in", "deposits.csv")))
}
