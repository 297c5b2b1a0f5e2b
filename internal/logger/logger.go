package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide logger. Storage-layer detail goes here;
// HTTP responses only ever carry generic messages.
func New() *zap.Logger {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}
