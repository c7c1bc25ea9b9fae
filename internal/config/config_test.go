package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"top_n": 10,
		"verbose": true,
		"database_url": "postgres://localhost/quiz"
	}`), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TopN)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "postgres://localhost/quiz", cfg.DatabaseURL)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{bad`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_NegativeTopN(t *testing.T) {
	cfg := &Config{TopN: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingCareersFile(t *testing.T) {
	cfg := &Config{Careers: filepath.Join(t.TempDir(), "nope.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ZeroValueIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}
