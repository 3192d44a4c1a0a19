// Package phlog constructs the structured logger every other package
// accepts at construction time, following the corpus convention of passing
// a *zap.Logger down through constructors rather than reaching for a
// package-level global.
package phlog

import "go.uber.org/zap"

// New builds a production-config logger, or a development-config logger
// (human-readable, debug-level) when debug is true.
func New(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
