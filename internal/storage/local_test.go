package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(Config{BasePath: base})
	assert.NoError(t, err)

	ctx := context.Background()
	ref := "uploads/resumes/123-abc.pdf"

	err = store.Save(ctx, ref, strings.NewReader("content"), 7, "application/pdf")
	assert.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(base, "uploads", "resumes", "123-abc.pdf"))
	assert.NoError(t, statErr, "the reference maps directly under the base directory")

	ok, err := store.Exists(ctx, ref)
	assert.NoError(t, err)
	assert.True(t, ok)

	rc, size, err := store.Open(ctx, ref)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), size)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "content", string(data))

	assert.NoError(t, store.Delete(ctx, ref))
	ok, _ = store.Exists(ctx, ref)
	assert.False(t, ok)
}

func TestLocalStorage_OpenMissing(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	assert.NoError(t, err)

	_, _, err = store.Open(context.Background(), "uploads/resumes/nope.pdf")
	assert.Error(t, err)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "uploads/ids/nope.png"))
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(Config{Type: "carrier-pigeon"})
	assert.Error(t, err)
}
