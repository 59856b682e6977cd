package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide zap logger. Development mode gets the
// human-readable console encoder, production gets JSON.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
