// Package cdp converts chromedp failures into enriched driver errors.
package cdp

import (
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/cdproto"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/shiwano/drivererr"
)

const (
	// DriverVersion is the Driver info reported for failures raised through chromedp.
	DriverVersion = "driver.version: chromedp"
	// TargetID is the annotation key for the id of the browser target.
	TargetID = "Target ID"
	// ProtocolError is the annotation key for a DevTools protocol error.
	ProtocolError = "Protocol error"
)

// Run executes actions with chromedp.Run and converts the failure, if any.
func Run(ctx context.Context, actions ...chromedp.Action) error {
	return wrap(ctx, chromedp.Run(ctx, actions...))
}

// Wrap converts err into a drivererr.Error annotated with the session and
// target of the chromedp context. Errors that already are drivererr errors
// are annotated in place. Returns nil if err is nil.
func Wrap(ctx context.Context, err error) error {
	return wrap(ctx, err)
}

func wrap(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	e, ok := drivererr.As(err)
	if !ok {
		e = Classify(err).WithOptions(drivererr.StackSkip(2)).Wrap(err).(drivererr.Error)
		err = e
	}
	annotate(ctx, e, err)
	return err
}

// Classify returns the definition matching a chromedp failure.
// Unrecognized failures map to drivererr.ErrWebDriver.
func Classify(err error) *drivererr.Definition {
	var exc *runtime.ExceptionDetails
	switch {
	case errors.Is(err, chromedp.ErrNoResults):
		return drivererr.ErrNoSuchElement
	case errors.Is(err, chromedp.ErrNotVisible),
		errors.Is(err, chromedp.ErrDisabled),
		errors.Is(err, chromedp.ErrInvalidBoxModel):
		return drivererr.ErrElementNotInteractable
	case errors.Is(err, chromedp.ErrNotSelected):
		return drivererr.ErrInvalidElementState
	case errors.Is(err, chromedp.ErrPollingTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return drivererr.ErrTimeout
	case errors.Is(err, chromedp.ErrInvalidContext),
		errors.Is(err, chromedp.ErrInvalidTarget),
		errors.Is(err, chromedp.ErrChannelClosed):
		return drivererr.ErrNoSuchSession
	case errors.Is(err, chromedp.ErrJSUndefined),
		errors.Is(err, chromedp.ErrJSNull),
		errors.As(err, &exc):
		return drivererr.ErrJavascript
	default:
		return drivererr.ErrWebDriver
	}
}

func annotate(ctx context.Context, e drivererr.Error, err error) {
	if c := chromedp.FromContext(ctx); c != nil && c.Target != nil {
		if c.Target.SessionID != "" {
			e.AddInfo(drivererr.SessionID, string(c.Target.SessionID))
		}
		if c.Target.TargetID != "" {
			e.AddInfo(TargetID, string(c.Target.TargetID))
		}
	}

	var protoErr *cdproto.Error
	if errors.As(err, &protoErr) {
		e.AddInfo(ProtocolError, fmt.Sprintf("%d %s", protoErr.Code, protoErr.Message))
	}
	e.AddInfo(drivererr.DriverInfo, DriverVersion)
}
