package bootstrap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/facecodes/pkg/config"
	log "github.com/Goden-Gun/facecodes/pkg/logger"
)

func resetLogger(t *testing.T) {
	t.Cleanup(func() {
		std := log.StandardLogger()
		std.ReplaceHooks(make(map[log.Level][]log.Hook))
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.TextFormatter{})
		log.SetLevel(log.InfoLevel)
		log.SetReportCaller(false)
	})
}

func TestInitLoggerJSON(t *testing.T) {
	resetLogger(t)
	var buf bytes.Buffer

	err := InitLoggerWithOptions(config.LogConfig{Format: "json", Level: "debug"}, LoggerOptions{
		Stdout:      &buf,
		AddNodeHook: true,
	})
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("code", 7).Debug("lockout")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "lockout", line["msg"])
	assert.EqualValues(t, 7, line["code"])
	assert.NotEmpty(t, line["node_id"])
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	resetLogger(t)
	var buf bytes.Buffer

	require.NoError(t, InitLoggerWithOptions(config.LogConfig{Format: "text", Level: "loud"}, LoggerOptions{Stdout: &buf}))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	// the fallback warning lands on the newly configured output
	assert.Contains(t, buf.String(), "invalid log level")
	assert.Contains(t, buf.String(), "loud")
}

func TestInitLoggerWithFile(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()
	var buf bytes.Buffer

	cfg := config.LogConfig{Format: "json", Level: "info"}
	cfg.File = config.LogFileConfig{Enabled: true, Dir: dir}
	require.NoError(t, InitLoggerWithOptions(cfg, LoggerOptions{ServiceName: "facecodes-test", Stdout: &buf}))

	log.StandardLogger().Info("rotated")

	files, err := filepath.Glob(filepath.Join(dir, "facecodes-test.*.log"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotated")
	assert.Contains(t, buf.String(), "rotated")
}
