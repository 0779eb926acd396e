package drivererr_test

import (
	"errors"
	"testing"

	"github.com/shiwano/drivererr"
)

func TestDefinition_Error(t *testing.T) {
	if got := drivererr.Define("timeout").Error(); got != "timeout" {
		t.Errorf("want %q, got %q", "timeout", got)
	}
	if got := drivererr.Define("").Error(); got != "[unnamed]" {
		t.Errorf("want %q, got %q", "[unnamed]", got)
	}
}

func TestDefinition_Metadata(t *testing.T) {
	def := drivererr.Define("custom",
		drivererr.Code("custom error"),
		drivererr.Status(99),
		drivererr.SupportURLAbsolute("https://example.com/errors/custom"),
	)

	if def.Kind() != "custom" {
		t.Errorf("want kind %q, got %q", "custom", def.Kind())
	}
	if def.Code() != "custom error" {
		t.Errorf("want code %q, got %q", "custom error", def.Code())
	}
	if status, ok := def.Status(); !ok || status != 99 {
		t.Errorf("want status 99, got %d (%v)", status, ok)
	}
	if def.SupportURL() != "https://example.com/errors/custom" {
		t.Errorf("want support url, got %q", def.SupportURL())
	}
	if _, ok := drivererr.Define("bare").Status(); ok {
		t.Error("want no status")
	}
}

func TestDefinition_WithOptions(t *testing.T) {
	t.Run("no options returns same definition", func(t *testing.T) {
		if drivererr.ErrTimeout.WithOptions() != drivererr.ErrTimeout {
			t.Error("want same definition")
		}
	})

	t.Run("clone keeps metadata", func(t *testing.T) {
		def := drivererr.ErrNoSuchElement.WithOptions(drivererr.Session("abc"))

		if def == drivererr.ErrNoSuchElement {
			t.Fatal("want new definition")
		}
		if def.SupportURL() != drivererr.ErrNoSuchElement.SupportURL() {
			t.Errorf("want support url %q, got %q", drivererr.ErrNoSuchElement.SupportURL(), def.SupportURL())
		}
		if def.Code() != "no such element" {
			t.Errorf("want code, got %q", def.Code())
		}
	})

	t.Run("override support url", func(t *testing.T) {
		def := drivererr.ErrNoSuchElement.WithOptions(drivererr.SupportURL(""))

		if def.SupportURL() != "" {
			t.Errorf("want no support url, got %q", def.SupportURL())
		}
	})

	t.Run("annotations are copied per error", func(t *testing.T) {
		def := drivererr.Define("test", drivererr.Info("a", "1"))
		err1 := def.New("one").(drivererr.Error)
		err2 := def.New("two").(drivererr.Error)

		err1.AddInfo("b", "2")

		if n := len(err2.Info()); n != 1 {
			t.Errorf("want 1 annotation on second error, got %d", n)
		}
		if n := len(def.New("three").(drivererr.Error).Info()); n != 1 {
			t.Errorf("want definition annotations untouched, got %d", n)
		}
	})
}

func TestDefinition_Constructors(t *testing.T) {
	cause := errors.New("cause")
	def := drivererr.Define("test", fixed()...)

	tests := []struct {
		name      string
		err       error
		wantMsg   string
		hasMsg    bool
		wantCause error
	}{
		{"blank", def.Blank(), "", false, nil},
		{"new", def.New("msg"), "msg", true, nil},
		{"errorf", def.Errorf("msg %d", 1), "msg 1", true, nil},
		{"wrap", def.Wrap(cause), "cause", true, cause},
		{"wrapf", def.Wrapf(cause, "msg %s", "x"), "msg x", true, cause},
		{"wrap with status", def.WrapWithStatus(cause, 7, "msg"), "msg", true, cause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := drivererr.As(tt.err)
			if !ok {
				t.Fatal("want drivererr.Error")
			}
			msg, hasMsg := e.Message()
			if msg != tt.wantMsg || hasMsg != tt.hasMsg {
				t.Errorf("want message %q (%v), got %q (%v)", tt.wantMsg, tt.hasMsg, msg, hasMsg)
			}
			if e.Unwrap() != tt.wantCause {
				t.Errorf("want cause %v, got %v", tt.wantCause, e.Unwrap())
			}
			if e.Definition() != def {
				t.Error("want definition")
			}
		})
	}
}

func TestDefinitions(t *testing.T) {
	defs := drivererr.Definitions()

	if defs[0] != drivererr.ErrWebDriver {
		t.Error("want ErrWebDriver first")
	}

	kinds := make(map[drivererr.Kind]bool)
	codes := make(map[string]bool)
	for _, d := range defs {
		if kinds[d.Kind()] {
			t.Errorf("duplicate kind %q", d.Kind())
		}
		if codes[d.Code()] {
			t.Errorf("duplicate code %q", d.Code())
		}
		kinds[d.Kind()] = true
		codes[d.Code()] = true
		if _, ok := d.Status(); !ok {
			t.Errorf("want status on %q", d.Kind())
		}
	}

	want := map[*drivererr.Definition]string{
		drivererr.ErrNoSuchElement:         "http://seleniumhq.org/exceptions/no_such_element.html",
		drivererr.ErrStaleElementReference: "http://seleniumhq.org/exceptions/stale_element_reference.html",
		drivererr.ErrInvalidSelector:       "http://seleniumhq.org/exceptions/invalid_selector_exception.html",
		drivererr.ErrWebDriver:             "",
		drivererr.ErrTimeout:               "",
	}
	for d, url := range want {
		if d.SupportURL() != url {
			t.Errorf("want support url %q on %q, got %q", url, d.Kind(), d.SupportURL())
		}
	}
}
