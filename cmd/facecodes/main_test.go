package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/facecodes/pkg/codes"
	log "github.com/Goden-Gun/facecodes/pkg/logger"
	"github.com/Goden-Gun/facecodes/pkg/status"
)

func execute(t *testing.T, configDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("ENV_FILE", "")
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.TextFormatter{})
		log.SetLevel(log.InfoLevel)
	})

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config-dir", configDir}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunExitCode(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("ENV_FILE", "")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	dir := t.TempDir()

	var out, errOut bytes.Buffer
	assert.Equal(t, 0, run([]string{"--config-dir", dir, "describe", "error", "7"}, &out, &errOut))
	assert.Contains(t, out.String(), "FACE_ERROR_LOCKOUT")

	out.Reset()
	errOut.Reset()
	assert.Equal(t, 1, run([]string{"--config-dir", dir, "describe", "error", "FACE_ERROR_BOGUS"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "FACE_ERROR_BOGUS")
}

func TestListText(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "list", "errors")
	require.NoError(t, err)

	assert.Contains(t, out, "FACE_ERROR_LOCKOUT_PERMANENT")
	assert.Contains(t, out, "FACE_ERROR_NEGATIVE_BUTTON (internal)")
	assert.Contains(t, out, "FACE_ERROR_VENDOR_BASE")
	assert.NotContains(t, out, "FACE_ACQUIRED_GOOD")
}

func TestListJSON(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "list", "acquired", "-o", "json")
	require.NoError(t, err)

	var rows []listRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(codes.AcquisitionRegistry())+1)
	assert.Equal(t, "FACE_ACQUIRED_GOOD", rows[0].Symbol)
	assert.Equal(t, int32(13), rows[13].Value)
	assert.Equal(t, int32(codes.VendorBase), rows[len(rows)-1].Value)
}

func TestListRejectsUnknownNamespace(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "list", "fingerprints")
	assert.Error(t, err)
}

func TestDescribeBySymbolAndValue(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "describe", "error", "FACE_ERROR_LOCKOUT")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "FACE_ERROR_LOCKOUT 7 (error, core)"))
	assert.Contains(t, out, "lockout: temporary lockouts last 30s after 5 failed attempts")

	out, _, err = execute(t, t.TempDir(), "describe", "acquired", "13")
	require.NoError(t, err)
	assert.Contains(t, out, "FACE_ACQUIRED_RECALIBRATE 13")
}

func TestDescribeUnknownFallsBack(t *testing.T) {
	out, stderr, err := execute(t, t.TempDir(), "describe", "error", "14", "-o", "json")
	require.NoError(t, err)

	var rep status.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, status.FallbackErrorText, rep.Text)
	assert.Equal(t, "ErrorCode(14)", rep.Symbol)
	assert.Contains(t, stderr, "unrecognized face status code")
}

func TestDescribeRejectsBadSymbol(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "describe", "error", "FACE_ERROR_BOGUS")
	assert.ErrorIs(t, err, codes.ErrUnknownCode)

	_, _, err = execute(t, t.TempDir(), "describe", "iris", "1")
	assert.Error(t, err)
}

func TestDescribeVendorFromConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := "vendor:\n  name: acme\n  error_messages:\n    - Lens dirty.\n    - IR emitter blocked.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config_test.yaml"), []byte(yaml), 0o600))

	out, _, err := execute(t, dir, "describe", "error", "8", "--vendor-code", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "FACE_ERROR_VENDOR_BASE+1 1001 (error, vendor)")
	assert.Contains(t, out, "IR emitter blocked.")

	out, _, err = execute(t, dir, "describe", "error", "FACE_ERROR_VENDOR_BASE")
	require.NoError(t, err)
	assert.Contains(t, out, "Lens dirty.")
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "list", "-o", "yaml")
	assert.Error(t, err)
}
