package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerDefaultsToInfo(t *testing.T) {
	log := NewLogger("not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerParsesLevel(t *testing.T) {
	log := NewLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestMiningLoggerPairEvaluated(t *testing.T) {
	log, buf := setupTestLogger()
	miningLogger := NewMiningLogger(log)

	miningLogger.LogPairEvaluated("S0001", "home_minus_35", 42, 41, 3.1, false)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "S0001", logEntry["context_name"])
	assert.Equal(t, "mining", logEntry["component"])
}

func TestMiningLoggerApproval(t *testing.T) {
	log, buf := setupTestLogger()
	miningLogger := NewMiningLogger(log)

	miningLogger.LogRuleApproved("S0002", "away_minus_45", 1.0, 0.99, 4.2)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "approval", logEntry["event_type"])
	assert.Equal(t, "away_minus_45", logEntry["outcome_name"])
}

func TestMiningLoggerCombinationFailure(t *testing.T) {
	log, buf := setupTestLogger()
	miningLogger := NewMiningLogger(log)

	miningLogger.LogCombinationFailure("S0003", "draw", errors.New("unknown context filter: S0003"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Contains(t, logEntry["error"], "unknown context filter")
}
