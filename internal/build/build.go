// Package build provides variables that are set at build-time
// with the -X ldflag. If the values are not given at build-time,
// they will be determined from [debug.BuildInfo].
package build

import (
	"regexp"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	pkg       string
	version   string
	buildTime string
)

const develVersion = "(devel)"

var once sync.Once

var semverRe = regexp.MustCompile(`v?\d+(\.\d+){0,2}`)

func semver(v string) string {
	loc := semverRe.FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

func load() {
	if version != "" {
		version = semver(version)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		if version == "" {
			version = develVersion
		}
		return
	}
	if pkg == "" {
		pkg = info.Main.Path
	}
	if version == "" {
		version = info.Main.Version
	}
	if version == "" {
		version = develVersion
	}
	if buildTime == "" {
		buildTime = vcsTime(info.Settings)
	}
}

func vcsTime(settings []debug.BuildSetting) string {
	for _, s := range settings {
		if s.Key == "vcs.time" {
			if t, ok := strings.CutSuffix(s.Value, "Z"); ok {
				return t + "+00:00"
			}
			return s.Value
		}
	}
	return ""
}

// Package returns the import path of the main package.
func Package() string {
	once.Do(load)
	return pkg
}

// Version returns the semantic version of the build, or "(devel)".
func Version() string {
	once.Do(load)
	return version
}

// BuildTime returns the commit time of the build, or "" if unknown.
func BuildTime() string {
	once.Do(load)
	return buildTime
}
