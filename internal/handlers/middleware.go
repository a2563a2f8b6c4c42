package handlers

import (
	"log/slog"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"event-system/utils"
)

// requestID returns a short correlation id, falling back to a fixed
// placeholder if the entropy source fails so log lines stay greppable.
func requestID() string {
	id, err := utils.GenerateCode(4)
	if err != nil {
		return "00000000"
	}
	return id
}

// RequestLogger tags every request with a short id and logs its outcome.
func RequestLogger() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := requestID()
		started := time.Now()

		err := e.Next()

		logger := slog.Info
		if err != nil {
			logger = slog.Warn
		}
		logger("request",
			"id", id,
			"method", e.Request.Method,
			"path", e.Request.URL.Path,
			"duration", time.Since(started),
			"error", err,
		)

		return err
	}
}
