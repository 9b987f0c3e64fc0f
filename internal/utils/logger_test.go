// internal/utils/logger_test.go
package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(&LoggingConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("test message")
	logger.Sync()
}

func TestNewLoggerConsoleFormat(t *testing.T) {
	logger, err := NewLogger(&LoggingConfig{Level: "debug", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := NewLogger(&LoggingConfig{Level: "verbose"})
	assert.Error(t, err)
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "encoder.log")

	logger, err := NewLogger(&LoggingConfig{Level: "info", Output: path, MaxSize: 1})
	require.NoError(t, err)

	logger.Info("written to file")
	logger.Sync()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewEncoderLoggerNilBase(t *testing.T) {
	el := NewEncoderLogger(nil, "starprnt")
	require.NotNil(t, el)

	// Must not panic without logging setup.
	el.LogCommand("initialize", 3)
}

func TestNewEncoderLoggerFields(t *testing.T) {
	el := NewEncoderLogger(zap.NewNop(), "starprnt")
	require.NotNil(t, el)
	el.LogCommand("barcode", 11, zap.String("symbology", "code128"))
}
