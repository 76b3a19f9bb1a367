package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	logger := New("debug")
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.entry.Logger.GetLevel())

	logger = New("warn")
	assert.Equal(t, logrus.WarnLevel, logger.entry.Logger.GetLevel())

	// Unknown levels fall back to info
	logger = New("loud")
	assert.Equal(t, logrus.InfoLevel, logger.entry.Logger.GetLevel())
}

func TestWithField(t *testing.T) {
	logger := NewNop()
	child := logger.WithField("file", "report.txt")

	require.NotNil(t, child)
	assert.NotSame(t, logger, child)
	assert.Equal(t, "report.txt", child.entry.Data["file"])
	// Parent is untouched
	assert.Empty(t, logger.entry.Data)
}

func TestWithError(t *testing.T) {
	logger := NewNop().WithError(assert.AnError)
	assert.Equal(t, assert.AnError, logger.entry.Data[logrus.ErrorKey])
}
