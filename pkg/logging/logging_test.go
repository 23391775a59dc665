package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Setup(false, "codedigest", "test"))
	require.NotNil(t, Logger)
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))
	assert.Same(t, Logger, zap.L())

	require.NoError(t, Setup(true, "codedigest", "test"))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))
}

func TestL_BeforeSetup(t *testing.T) {
	Logger = nil
	assert.NotNil(t, L())
}
