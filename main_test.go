package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("Missing file is ignored", func(t *testing.T) {
		// When: load a .env file that does not exist
		err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))

		// Then: no error is returned
		require.NoError(t, err)
	})

	t.Run("Variables are loaded", func(t *testing.T) {
		// Given: a valid .env file
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CONNECTN_TEST_PRESET=gomoku\n"), 0o600))
		t.Setenv("CONNECTN_TEST_PRESET", "")
		require.NoError(t, os.Unsetenv("CONNECTN_TEST_PRESET"))

		// When: load it
		require.NoError(t, loadDotEnv(path))

		// Then: the variable is set
		assert.Equal(t, "gomoku", os.Getenv("CONNECTN_TEST_PRESET"))
	})

	t.Run("Malformed file is reported", func(t *testing.T) {
		// Given: a .env file with an unterminated quoted value
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("GAME_PRESET=\"gomoku\n"), 0o600))

		// When: load it
		err := loadDotEnv(path)

		// Then: the parse error is surfaced
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load .env file")
	})
}
