// Package sedlog holds the logger used by the sedml library packages.
//
// The library is silent by default. Programs that want its debug output
// install a logger with SetLogger, typically the configured global
// zerolog logger.
package sedlog

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// Logger returns the library logger
func Logger() *zerolog.Logger { return current.Load() }

// SetLogger makes l the library logger
func SetLogger(l zerolog.Logger) { current.Store(&l) }

// Disable discards library logging again
func Disable() { SetLogger(zerolog.Nop()) }
