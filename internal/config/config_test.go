package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{"port": 9090, "max_questions": 5, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.MaxQuestions)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_Bounds(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{TimeoutSeconds: -5}).Validate())
	assert.Error(t, (&Config{MaxQuestions: -1}).Validate())
}

func TestMergeWithDefaults_FillsZeroValues(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{
		Port:           8080,
		DatabaseURL:    "postgres://localhost/coach",
		TimeoutSeconds: 20,
		MaxQuestions:   10,
	})

	assert.Equal(t, 9090, merged.Port) // explicit value wins
	assert.Equal(t, "postgres://localhost/coach", merged.DatabaseURL)
	assert.Equal(t, 20, merged.TimeoutSeconds)
	assert.Equal(t, 10, merged.MaxQuestions)
}

func TestFromEnv_ReadsVariables(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := FromEnv()

	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
}
