package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-ledger/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"LEDGER_LOG_LEVEL", "LEDGER_LOG_FORMAT", "LEDGER_CONTINUE_ON_ERROR", "LEDGER_JOURNAL_PATH"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.ContinueOnError)
	assert.Empty(t, cfg.JournalPath)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LEDGER_LOG_LEVEL", "DEBUG")
	t.Setenv("LEDGER_LOG_FORMAT", "console")
	t.Setenv("LEDGER_CONTINUE_ON_ERROR", "true")
	t.Setenv("LEDGER_JOURNAL_PATH", "/tmp/journal.jsonl")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.ContinueOnError)
	assert.Equal(t, "/tmp/journal.jsonl", cfg.JournalPath)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LEDGER_LOG_LEVEL=warn\nLEDGER_CONTINUE_ON_ERROR=1\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("LEDGER_LOG_LEVEL", "")
	t.Setenv("LEDGER_CONTINUE_ON_ERROR", "")
	t.Setenv("LEDGER_LOG_FORMAT", "")
	// godotenv does not override variables that are already set, even to "".
	os.Unsetenv("LEDGER_LOG_LEVEL")
	os.Unsetenv("LEDGER_CONTINUE_ON_ERROR")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.ContinueOnError)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("ContinueOnError", func(t *testing.T) {
		t.Setenv("LEDGER_LOG_FORMAT", "")
		t.Setenv("LEDGER_CONTINUE_ON_ERROR", "sometimes")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("LogFormat", func(t *testing.T) {
		t.Setenv("LEDGER_CONTINUE_ON_ERROR", "")
		t.Setenv("LEDGER_LOG_FORMAT", "xml")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
