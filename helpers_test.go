package drivererr_test

import (
	"context"
	"errors"

	"github.com/shiwano/drivererr"
)

const (
	testBuildLine  = "Build info: version: '4.0.0', revision: 'abc123', time: '2025-01-02T15:04:05Z'"
	testSystemLine = "System info: host: 'ci-host', ip: '10.0.0.7', os.name: 'Linux', os.arch: 'amd64', os.version: '6.8.0', go.version: 'go1.25.0'"
	testSystemNA   = "System info: host: 'N/A', ip: 'N/A', os.name: 'Linux', os.arch: 'amd64', os.version: '6.8.0', go.version: 'go1.25.0'"
)

var (
	errLookup = errors.New("lookup ci-host: no such host")
	errTest   = errors.New("test")
)

type fakeEnv struct {
	err   error
	calls *int
}

func (f fakeEnv) LocalHost(ctx context.Context) (string, string, error) {
	if f.calls != nil {
		*f.calls++
	}
	if f.err != nil {
		return "", "", f.err
	}
	return "ci-host", "10.0.0.7", nil
}

func (f fakeEnv) OSName() string         { return "Linux" }
func (f fakeEnv) OSArch() string         { return "amd64" }
func (f fakeEnv) OSVersion() string      { return "6.8.0" }
func (f fakeEnv) RuntimeName() string    { return "go" }
func (f fakeEnv) RuntimeVersion() string { return "go1.25.0" }

var testBuild = drivererr.ModuleBuildInfo{
	Version:  "4.0.0",
	Revision: "abc123",
	Time:     "2025-01-02T15:04:05Z",
}

// fixed returns options that make error messages deterministic.
func fixed(extra ...drivererr.Option) []drivererr.Option {
	return append([]drivererr.Option{
		drivererr.WithEnvironment(fakeEnv{}),
		drivererr.WithBuildInfo(testBuild),
	}, extra...)
}

type FakeDriver struct{}

func (d *FakeDriver) FindElement(def *drivererr.Definition) error {
	return def.New("no element")
}

type RemoteDriver struct {
	local *FakeDriver
}

func (d *RemoteDriver) FindElement(def *drivererr.Definition) error {
	return d.local.FindElement(def)
}

type DeepDriver struct {
	depth int
}

func (d *DeepDriver) Do(def *drivererr.Definition) error {
	return descend(def, d.depth)
}

func descend(def *drivererr.Definition, n int) error {
	if n == 0 {
		return def.New("deep")
	}
	return descend(def, n-1)
}
