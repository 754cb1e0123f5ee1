package sedlog

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Cleanup(Disable)
	check := assert.New(t)

	var global bytes.Buffer
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })
	log.Logger = zerolog.New(&global)

	Logger().Debug().Msg("unconfigured")
	check.Empty(global.String())

	var b bytes.Buffer
	SetLogger(zerolog.New(&b))
	Logger().Debug().Str("path", "a.xml").Msg("configured")
	check.Contains(b.String(), `"path":"a.xml"`)
	check.Contains(b.String(), "configured")

	b.Reset()
	Disable()
	Logger().Error().Msg("dropped")
	check.Empty(b.String())
}
