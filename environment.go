package drivererr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/singleflight"
)

type (
	// Environment describes the host an error was observed on.
	Environment interface {
		// LocalHost resolves the local host name and its network address.
		// It must respect ctx cancellation.
		LocalHost(ctx context.Context) (name, addr string, err error)
		// OSName returns the display name of the operating system.
		OSName() string
		// OSArch returns the processor architecture.
		OSArch() string
		// OSVersion returns the operating system (kernel) version.
		OSVersion() string
		// RuntimeName returns the name of the language runtime.
		RuntimeName() string
		// RuntimeVersion returns the version of the language runtime.
		RuntimeVersion() string
	}

	hostEnvironment struct {
		lookupTimeout time.Duration
		lookups       singleflight.Group
	}

	localHost struct {
		name, addr string
	}
)

const (
	// NotAvailable is reported for host fields that could not be resolved.
	NotAvailable = "N/A"

	// DefaultLookupTimeout bounds the local host name resolution.
	DefaultLookupTimeout = 2 * time.Second
)

var (
	errNoAddress = errors.New("drivererr: no address for local host")

	defaultEnvironment Environment = HostEnvironment(DefaultLookupTimeout)

	osDisplayNames = map[string]string{
		"linux":     "Linux",
		"darwin":    "Mac OS X",
		"windows":   "Windows",
		"freebsd":   "FreeBSD",
		"openbsd":   "OpenBSD",
		"netbsd":    "NetBSD",
		"dragonfly": "DragonFly",
		"solaris":   "SunOS",
		"illumos":   "illumos",
		"aix":       "AIX",
		"android":   "Android",
		"ios":       "iOS",
	}
)

// HostEnvironment returns an Environment backed by the running process.
// A non-positive lookupTimeout selects DefaultLookupTimeout.
func HostEnvironment(lookupTimeout time.Duration) Environment {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	return &hostEnvironment{lookupTimeout: lookupTimeout}
}

// DefaultEnvironment returns the Environment used by definitions that do not
// set one explicitly.
func DefaultEnvironment() Environment {
	return defaultEnvironment
}

// SystemInformation formats the host fingerprint of env.
// Host resolution failures are reported as NotAvailable and never returned.
func SystemInformation(ctx context.Context, env Environment) string {
	if env == nil {
		env = defaultEnvironment
	}
	host, ip := NotAvailable, NotAvailable
	if name, addr, err := env.LocalHost(ctx); err == nil {
		host, ip = name, addr
	}
	return fmt.Sprintf("System info: host: '%s', ip: '%s', os.name: '%s', os.arch: '%s', os.version: '%s', %s.version: '%s'",
		host,
		ip,
		env.OSName(),
		env.OSArch(),
		env.OSVersion(),
		env.RuntimeName(),
		env.RuntimeVersion())
}

// LocalHost resolves the host name and its address. Concurrent calls share
// one lookup; each call still waits for a fresh result.
func (h *hostEnvironment) LocalHost(ctx context.Context) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	ch := h.lookups.DoChan("localhost", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.lookupTimeout)
		defer cancel()
		return lookupLocalHost(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", "", res.Err
		}
		lh := res.Val.(localHost)
		return lh.name, lh.addr, nil
	case <-ctx.Done():
		return "", "", ctx.Err()
	}
}

func lookupLocalHost(ctx context.Context) (localHost, error) {
	name, err := os.Hostname()
	if err != nil {
		return localHost{}, err
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, name)
	if err != nil {
		return localHost{}, err
	}
	for _, a := range addrs {
		if ip4 := a.IP.To4(); ip4 != nil {
			return localHost{name: name, addr: ip4.String()}, nil
		}
	}
	if len(addrs) > 0 {
		return localHost{name: name, addr: addrs[0].IP.String()}, nil
	}
	return localHost{}, errNoAddress
}

func (h *hostEnvironment) OSName() string {
	if n, ok := osDisplayNames[runtime.GOOS]; ok {
		return n
	}
	return runtime.GOOS
}

func (h *hostEnvironment) OSArch() string {
	return runtime.GOARCH
}

func (h *hostEnvironment) OSVersion() string {
	return osVersion()
}

func (h *hostEnvironment) RuntimeName() string {
	return "go"
}

func (h *hostEnvironment) RuntimeVersion() string {
	return runtime.Version()
}
