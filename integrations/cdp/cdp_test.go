package cdp_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/chromedp/cdproto"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiwano/drivererr"
	"github.com/shiwano/drivererr/integrations/cdp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want *drivererr.Definition
	}{
		{chromedp.ErrNoResults, drivererr.ErrNoSuchElement},
		{fmt.Errorf("query: %w", chromedp.ErrNoResults), drivererr.ErrNoSuchElement},
		{chromedp.ErrNotVisible, drivererr.ErrElementNotInteractable},
		{chromedp.ErrDisabled, drivererr.ErrElementNotInteractable},
		{chromedp.ErrNotSelected, drivererr.ErrInvalidElementState},
		{chromedp.ErrPollingTimeout, drivererr.ErrTimeout},
		{context.DeadlineExceeded, drivererr.ErrTimeout},
		{chromedp.ErrInvalidContext, drivererr.ErrNoSuchSession},
		{chromedp.ErrChannelClosed, drivererr.ErrNoSuchSession},
		{chromedp.ErrJSUndefined, drivererr.ErrJavascript},
		{&runtime.ExceptionDetails{Text: "Uncaught"}, drivererr.ErrJavascript},
		{errors.New("other"), drivererr.ErrWebDriver},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Same(t, tt.want, cdp.Classify(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, cdp.Wrap(context.Background(), nil))
	})

	t.Run("plain context", func(t *testing.T) {
		err := cdp.Wrap(context.Background(), chromedp.ErrNoResults)

		e, ok := drivererr.As(err)
		require.True(t, ok)
		assert.True(t, errors.Is(err, drivererr.ErrNoSuchElement))
		assert.True(t, errors.Is(err, chromedp.ErrNoResults))
		assert.Equal(t, []drivererr.Annotation{{Key: drivererr.DriverInfo, Value: cdp.DriverVersion}}, e.Info())

		head, ok := e.Stack().HeadFrame()
		require.True(t, ok)
		assert.Contains(t, head.Func, "TestWrap")
	})

	t.Run("chromedp target", func(t *testing.T) {
		ctx, cancel := chromedp.NewContext(context.Background())
		defer cancel()
		c := chromedp.FromContext(ctx)
		c.Target = &chromedp.Target{SessionID: "sess-1", TargetID: "target-1"}
		defer func() { c.Target = nil }()

		err := cdp.Wrap(ctx, chromedp.ErrNotVisible)

		info, _ := drivererr.InfoFrom(err)
		assert.Equal(t, []drivererr.Annotation{
			{Key: drivererr.SessionID, Value: "sess-1"},
			{Key: cdp.TargetID, Value: "target-1"},
			{Key: drivererr.DriverInfo, Value: cdp.DriverVersion},
		}, info)
		assert.Contains(t, err.Error(), "\nSession ID: sess-1\nTarget ID: target-1\nDriver info: driver.version: chromedp")
	})

	t.Run("protocol error", func(t *testing.T) {
		err := cdp.Wrap(context.Background(), &cdproto.Error{Code: -32000, Message: "No node with given id found"})

		assert.True(t, errors.Is(err, drivererr.ErrWebDriver))
		info, _ := drivererr.InfoFrom(err)
		assert.Equal(t, "-32000 No node with given id found", info[0].Value)
	})

	t.Run("existing error annotated in place", func(t *testing.T) {
		orig := drivererr.ErrTimeout.New("slow")
		err := cdp.Wrap(context.Background(), orig)

		assert.Same(t, orig, err)
		info, _ := drivererr.InfoFrom(err)
		assert.Equal(t, cdp.DriverVersion, info[0].Value)
	})
}

func TestRun(t *testing.T) {
	err := cdp.Run(context.Background(), chromedp.Navigate("about:blank"))

	assert.True(t, errors.Is(err, drivererr.ErrNoSuchSession))
	assert.True(t, errors.Is(err, chromedp.ErrInvalidContext))
}
