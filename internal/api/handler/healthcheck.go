package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler answers with the current time. With a database it also
// pings it and answers 503 when the ping fails.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				logrus.WithError(err).Warn("healthcheck: database unreachable")
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Database unreachable", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
