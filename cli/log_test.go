package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/andaru/sedml/sedlog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { _ = SetupLogging(DefaultLogLevel, io.Discard) })

	var b bytes.Buffer
	require.NoError(t, SetupLogging("DEBUG", &b))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	log.Debug().Str("path", "a.xml").Msg("reading")
	log.Trace().Msg("hidden")
	assert.Contains(t, b.String(), "reading")
	assert.Contains(t, b.String(), "a.xml")
	assert.NotContains(t, b.String(), "hidden")

	sedlog.Logger().Debug().Str("model", "m1").Msg("applied change")
	assert.Contains(t, b.String(), "applied change")

	require.NoError(t, SetupLogging("", &b))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	for _, level := range []string{"loud", "-"} {
		assert.Error(t, SetupLogging(level, &b), level)
	}
}
