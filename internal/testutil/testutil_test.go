package testutil

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("subdir", "file.txt")
	assert.True(t, filepath.IsAbs(path))
	assert.Contains(t, path, "subdir")
	assert.Contains(t, path, "file.txt")
}

func TestTestEnv_WriteFileString(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("nested/dir/file.txt", "hello")
	assert.True(t, env.FileExists("nested/dir/file.txt"))
	assert.False(t, env.FileExists("missing.txt"))
}

func TestNewIPv4Server(t *testing.T) {
	server := NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(t, w, map[string]string{"path": r.URL.Path})
	}))

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"path":"/ping"}`, string(body))
}

func TestPNG(t *testing.T) {
	cfg, err := png.DecodeConfig(bytes.NewReader(PNG(t, 12, 7)))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 7, cfg.Height)
}

func TestSetViperValue(t *testing.T) {
	ResetConfig(t)

	t.Run("set", func(t *testing.T) {
		SetViperValue(t, "sources.google_books.rate", 2.5)
		assert.Equal(t, 2.5, viper.GetFloat64("sources.google_books.rate"))
	})

	assert.Nil(t, viper.Get("sources.google_books.rate"))
}

func TestSetupTranslationCache(t *testing.T) {
	ResetConfig(t)
	env := NewTestEnv(t)

	path := SetupTranslationCache(t, env)
	assert.Equal(t, path, viper.GetString("translation.cache_file"))
	assert.True(t, env.FileExists("cache/.keep"))
}
