package drivererr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/shiwano/drivererr"
)

var (
	benchDef        = drivererr.Define("benchmark_error", fixed()...)
	benchDefNoTrace = drivererr.Define("benchmark_error_notrace", fixed(drivererr.NoTrace())...)
)

// Baseline: Standard library error creation
func BenchmarkStdlibNew(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = errors.New("benchmark error")
	}
}

// drivererr: New with default stack trace
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = benchDef.New("benchmark error")
	}
}

// drivererr: New with NoTrace option
func BenchmarkNewNoTrace(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = benchDefNoTrace.New("benchmark error")
	}
}

// drivererr: Wrap with default stack trace
func BenchmarkWrap(b *testing.B) {
	cause := errors.New("cause error")
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		_ = benchDef.Wrap(cause)
	}
}

// drivererr: composite message with 5 annotations
func BenchmarkError(b *testing.B) {
	err := benchDef.New("benchmark error").(drivererr.Error)
	for i := range 5 {
		err.AddInfo(fmt.Sprintf("key_%d", i), "value")
	}
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		_ = err.Error()
	}
}

// drivererr: AddInfo overwriting one key
func BenchmarkAddInfo(b *testing.B) {
	err := benchDef.New("benchmark error").(drivererr.Error)
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		err.AddInfo("key", "value")
	}
}

// drivererr: JSON marshaling
func BenchmarkJSONMarshal(b *testing.B) {
	err := benchDef.New("benchmark error")
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = json.Marshal(err)
	}
}

// drivererr: slog.LogValue
func BenchmarkLogValue(b *testing.B) {
	err := benchDef.New("benchmark error").(slog.LogValuer)
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		_ = err.LogValue()
	}
}

// drivererr: driver name inference
func BenchmarkDriverName(b *testing.B) {
	names := []string{"testing.tRunner", "github.com/acme/chrome.ChromeDriver", "github.com/acme/remote.RemoteDriver"}
	b.ReportAllocs()
	for b.Loop() {
		_ = drivererr.DriverName(names)
	}
}
