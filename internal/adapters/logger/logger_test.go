package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgup/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("checking for updates")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("ignoring invalid selector")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error_Simple(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(os.ErrPermission)

	g := goldie.New(t)
	g.Assert(t, "error_simple", buf.Bytes())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(
		errors.New("connection refused"),
		"failed to fetch registry metadata",
	))

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("visible")
	assert.Equal(t, "visible\n", buf.String())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("structured message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "structured message", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}
