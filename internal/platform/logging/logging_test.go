package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriterLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriterBadLevelDefaultsToInfo(t *testing.T) {
	log := NewWithWriter(&bytes.Buffer{}, "loud")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, "debug"))

	log := FromContext(ctx)
	log.Info().Str("collection", "reviews").Msg("fetch failed")
	assert.Contains(t, buf.String(), `"collection":"reviews"`)
}

func TestFromContextWithoutLogger(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
