package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shaik-naseema17/employee-management-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_WritesToRotatingFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "app.log")

	log, closer := New(config.AppConfig{Env: "test", LogLevel: "info", LogFile: logFile})
	log.Info("employee created", "employee_id", "EMP-1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "employee created")
	assert.Contains(t, string(data), "EMP-1")
}

func TestNew_WithoutFile(t *testing.T) {
	log, closer := New(config.AppConfig{Env: "test"})
	assert.NotNil(t, log)
	assert.NoError(t, closer.Close())
}
