package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadAndURL(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	key, err := s.Upload(ctx, strings.NewReader("avatar"), "profile-images/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "profile-images/a.png", key)

	data, err := os.ReadFile(filepath.Join(s.BasePath(), "profile-images", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "avatar", string(data))

	url, err := s.GetURL(ctx, key, 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/profile-images/a.png", url)

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_TraversalStaysInsideBase(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	key, err := s.Upload(ctx, strings.NewReader("x"), "../../etc/evil.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "etc/evil.png", key)

	_, err = os.Stat(filepath.Join(s.BasePath(), "etc", "evil.png"))
	assert.NoError(t, err)
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	key, err := s.Upload(ctx, strings.NewReader("x"), "a.png", "image/png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_EmptyPath(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.Upload(context.Background(), strings.NewReader("x"), "/", "image/png")
	assert.Error(t, err)
}
