// Package sentry reports driver errors to Sentry.
package sentry

import (
	"context"
	"strconv"

	"github.com/getsentry/sentry-go"

	"github.com/shiwano/drivererr"
)

// CaptureError reports an error to Sentry with context from its enrichment.
//
// This function:
//   - Returns false if the error is nil
//   - Retrieves the Sentry hub from the context
//   - Configures a scope for this event only:
//   - Level sentry.LevelError
//   - Kind, W3C code and legacy status as tags
//   - Session ID as a tag
//   - All annotations as the "driver.info" context
//   - Build and system information as the "driver.host" context
//   - Captures the error exception
func CaptureError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)

		if e, ok := drivererr.As(err); ok {
			scope.SetTag("error.kind", string(e.Kind()))
			if code := e.Definition().Code(); code != "" {
				scope.SetTag("error.code", code)
			}
			if status, ok := e.StatusCode(); ok {
				scope.SetTag("error.status", strconv.Itoa(status))
			}

			scope.SetContext("driver.host", sentry.Context{
				"build":  e.BuildInformation(),
				"system": e.SystemInformation(),
			})

			// AdditionalInformation adds Driver info before the snapshot.
			_ = e.AdditionalInformation()
			info := make(sentry.Context)
			for _, a := range e.Info() {
				info[a.Key] = a.Value
				if a.Key == drivererr.SessionID {
					scope.SetTag("session.id", a.Value)
				}
			}
			scope.SetContext("driver.info", info)
		}

		hub.CaptureException(err)
	})
	return true
}
