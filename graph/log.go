package graph

import "github.com/rs/zerolog"

// logger receives the phase-timing diagnostics of the construction pipeline
// and the algorithm packages. It discards everything until a caller installs
// a real logger; the core never configures logging on its own.
var logger = zerolog.Nop()

// SetLogger installs the logger used for phase-timing diagnostics across the
// module. Not safe for concurrent use with running builds; install it once
// at startup.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Log returns the module-wide diagnostic logger.
func Log() *zerolog.Logger {
	return &logger
}
