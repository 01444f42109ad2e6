package gormstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bird-sightings-api/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(level logger.Level) (logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(logger.Options{Level: level, Format: logger.FormatJSON, App: "test", Output: &buf}), &buf
}

func TestGormLogger_QueryErrorStaysAtDebug(t *testing.T) {
	fc := func() (string, int64) { return "SELECT * FROM birds", 0 }
	queryErr := errors.New("sql: database is closed")

	log, buf := bufferLogger(logger.Info)
	newGormLogger(log).Trace(context.Background(), time.Now(), fc, queryErr)
	require.NoError(t, log.Sync())
	assert.Empty(t, buf.String())

	log, buf = bufferLogger(logger.Debug)
	newGormLogger(log).Trace(context.Background(), time.Now(), fc, queryErr)
	require.NoError(t, log.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "query failed", line["msg"])
	assert.Equal(t, "gorm", line["component"])
}

func TestGormLogger_SlowQueryWarns(t *testing.T) {
	log, buf := bufferLogger(logger.Info)
	begin := time.Now().Add(-2 * slowQueryThreshold)

	newGormLogger(log).Trace(context.Background(), begin, func() (string, int64) { return "SELECT 1", 1 }, nil)
	require.NoError(t, log.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "slow query", line["msg"])
}
