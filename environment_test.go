package drivererr_test

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/shiwano/drivererr"
)

func TestSystemInformation(t *testing.T) {
	t.Run("resolved host", func(t *testing.T) {
		got := drivererr.SystemInformation(context.Background(), fakeEnv{})

		if got != testSystemLine {
			t.Errorf("want %q, got %q", testSystemLine, got)
		}
	})

	t.Run("resolution failure", func(t *testing.T) {
		got := drivererr.SystemInformation(context.Background(), fakeEnv{err: errLookup})

		if got != testSystemNA {
			t.Errorf("want %q, got %q", testSystemNA, got)
		}
	})

	t.Run("nil environment uses default", func(t *testing.T) {
		got := drivererr.SystemInformation(context.Background(), nil)

		if !strings.Contains(got, "go.version: '"+runtime.Version()+"'") {
			t.Errorf("want runtime version, got %q", got)
		}
	})
}

func TestHostEnvironment_LocalHost(t *testing.T) {
	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got := drivererr.SystemInformation(ctx, drivererr.HostEnvironment(time.Minute))

		if !strings.HasPrefix(got, "System info: host: 'N/A', ip: 'N/A', ") {
			t.Errorf("want N/A host fields, got %q", got)
		}
	})

	t.Run("expired deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		name, addr, err := drivererr.HostEnvironment(time.Minute).LocalHost(ctx)
		if err == nil {
			t.Errorf("want error, got host %q and ip %q", name, addr)
		}
		if got := drivererr.SystemInformation(ctx, drivererr.HostEnvironment(time.Minute)); !strings.Contains(got, "host: 'N/A', ip: 'N/A'") {
			t.Errorf("want N/A host fields, got %q", got)
		}
	})

	t.Run("lookup timeout bounds the call", func(t *testing.T) {
		env := drivererr.HostEnvironment(time.Nanosecond)

		start := time.Now()
		got := drivererr.SystemInformation(context.Background(), env)
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("want lookup bounded by its timeout, took %s", elapsed)
		}
		if !strings.HasPrefix(got, "System info: host: '") {
			t.Errorf("want system line, got %q", got)
		}
	})

	t.Run("concurrent callers", func(t *testing.T) {
		env := drivererr.HostEnvironment(time.Second)

		done := make(chan string, 4)
		for range 4 {
			go func() { done <- drivererr.SystemInformation(context.Background(), env) }()
		}
		for range 4 {
			select {
			case got := <-done:
				if !strings.HasPrefix(got, "System info: host: '") {
					t.Errorf("want system line, got %q", got)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("want every caller to return")
			}
		}
	})
}

func TestHostEnvironment(t *testing.T) {
	env := drivererr.HostEnvironment(0)

	if env.OSArch() != runtime.GOARCH {
		t.Errorf("want arch %q, got %q", runtime.GOARCH, env.OSArch())
	}
	if env.RuntimeName() != "go" {
		t.Errorf("want runtime name %q, got %q", "go", env.RuntimeName())
	}
	if env.RuntimeVersion() != runtime.Version() {
		t.Errorf("want runtime version %q, got %q", runtime.Version(), env.RuntimeVersion())
	}
	if env.OSName() == "" {
		t.Error("want non-empty os name")
	}
	if runtime.GOOS == "linux" && env.OSName() != "Linux" {
		t.Errorf("want os name %q, got %q", "Linux", env.OSName())
	}
	if env.OSVersion() == "" {
		t.Error("want non-empty os version")
	}
}

func TestBuildInfo(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		if got := testBuild.String(); got != testBuildLine {
			t.Errorf("want %q, got %q", testBuildLine, got)
		}
	})

	t.Run("default", func(t *testing.T) {
		got := drivererr.DefaultBuildInfo().String()

		if !strings.HasPrefix(got, "Build info: version: '") {
			t.Errorf("want build line, got %q", got)
		}
		if strings.Contains(got, "''") {
			t.Errorf("want no empty fields, got %q", got)
		}
	})
}
