package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	logger := Setup(false, buf)
	assert.Equal(zerolog.InfoLevel, logger.GetLevel())

	logger.Debug().Msg("hidden")
	assert.Empty(buf.String())

	logger.Info().Int64("tps", 100).Msg("dispatcher ready")
	assert.Contains(buf.String(), "dispatcher ready")
	assert.Contains(buf.String(), "tps=")
}

func TestSetupVerbose(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	logger := Setup(true, buf)
	assert.Equal(zerolog.DebugLevel, logger.GetLevel())

	logger.Debug().Msg("shown")
	assert.Contains(buf.String(), "shown")
}
