// Package logging holds zerolog helpers shared across gitquery packages.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger derived from the global logger with a component
// identifier under the "cmp" key and the context hook attached.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
