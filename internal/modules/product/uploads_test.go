package product

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	store.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return store
}

func TestDiskStoreSave(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(&Image{Filename: "my pill box.png", ContentType: "image/png", Body: strings.NewReader("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "my-pill-box.png-1700000000123.png", name)

	data, err := os.ReadFile(filepath.Join(store.dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestDiskStoreRejectsUnknownTypes(t *testing.T) {
	store := newTestStore(t)
	for _, ct := range []string{"image/gif", "application/pdf", ""} {
		_, err := store.Save(&Image{Filename: "x", ContentType: ct, Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, apperr.ErrValidation, ct)
	}
	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiskStoreKeepsNamesInsideDir(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(&Image{Filename: "../../etc/passwd", ContentType: "image/jpeg", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "passwd-1700000000123.jpeg", name)

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(store.dir, name))
	assert.True(t, os.IsNotExist(err))
}
