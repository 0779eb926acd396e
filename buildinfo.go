package drivererr

import (
	"fmt"
	"runtime/debug"
	"sync"
)

type (
	// BuildInfo identifies the build of the program reporting an error.
	// Its String method is used verbatim in error messages.
	BuildInfo interface {
		String() string
	}

	// ModuleBuildInfo is a BuildInfo made of a version, a VCS revision and a build time.
	ModuleBuildInfo struct {
		Version  string `json:"version"`
		Revision string `json:"revision"`
		Time     string `json:"time"`
	}
)

const unknownBuildValue = "unknown"

// Link-time overrides, e.g.
//
//	go build -ldflags "-X github.com/shiwano/drivererr.buildVersion=4.0.0"
var (
	buildVersion  string
	buildRevision string
	buildTime     string
)

var readModuleBuildInfo = sync.OnceValue(func() ModuleBuildInfo {
	info := ModuleBuildInfo{
		Version:  unknownBuildValue,
		Revision: unknownBuildValue,
		Time:     unknownBuildValue,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.time":
				info.Time = s.Value
			}
		}
	}
	if buildVersion != "" {
		info.Version = buildVersion
	}
	if buildRevision != "" {
		info.Revision = buildRevision
	}
	if buildTime != "" {
		info.Time = buildTime
	}
	return info
})

// DefaultBuildInfo returns the build information of the running binary,
// read from the embedded module data and link-time overrides.
func DefaultBuildInfo() BuildInfo {
	return readModuleBuildInfo()
}

func (b ModuleBuildInfo) String() string {
	return fmt.Sprintf("Build info: version: '%s', revision: '%s', time: '%s'", b.Version, b.Revision, b.Time)
}
