package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, logging.ParseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, logging.ParseLevel(" warn "))
	assert.Equal(t, log.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, log.FatalLevel, logging.ParseLevel("fatal"))
	assert.Equal(t, log.InfoLevel, logging.ParseLevel("verbose"))
	assert.Equal(t, log.InfoLevel, logging.ParseLevel(""))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn", "json")

	logger.Info("hidden")
	logger.Warn("failed to save board", "err", "disk full")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "failed to save board", entry["msg"])
	assert.Equal(t, "disk full", entry["err"])
	assert.NotContains(t, buf.String(), "hidden")
}
