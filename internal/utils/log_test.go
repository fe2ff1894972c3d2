package utils

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return buf
}

func TestLogLevels(t *testing.T) {
	buf := captureOutput(t)
	logger := &defaultLogger{}

	logger.SetLogLevel(LogLevelNothing)
	logger.Errorf("err")
	logger.Infof("info")
	logger.Debugf("debug")
	require.Zero(t, buf.Len())

	logger.SetLogLevel(LogLevelError)
	logger.Errorf("err")
	logger.Infof("info")
	logger.Debugf("debug")
	require.Contains(t, buf.String(), "err")
	require.NotContains(t, buf.String(), "info")

	logger.SetLogLevel(LogLevelDebug)
	require.True(t, logger.Debug())
	logger.Infof("info")
	logger.Debugf("debug")
	require.Contains(t, buf.String(), "info")
	require.Contains(t, buf.String(), "debug")
}

func TestLogPrefix(t *testing.T) {
	buf := captureOutput(t)
	logger := &defaultLogger{}
	logger.SetLogLevel(LogLevelDebug)
	prefixed := logger.WithPrefix("server").WithPrefix("session")
	prefixed.Debugf("foobar")
	require.Contains(t, buf.String(), "server session foobar")
}

func TestReadLoggingEnv(t *testing.T) {
	testCases := map[string]LogLevel{
		"":       LogLevelNothing,
		"debug":  LogLevelDebug,
		"DEBUG":  LogLevelDebug,
		"info":   LogLevelInfo,
		"error":  LogLevelError,
		"foobar": LogLevelNothing,
	}
	for value, expected := range testCases {
		t.Setenv(logEnv, value)
		require.Equal(t, expected, readLoggingEnv())
	}
}
