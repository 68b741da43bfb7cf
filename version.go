package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info contains version and build information.
type Info struct {
	Version   string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	version := "unknown"
	buildTime := "unknown"

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				buildTime = setting.Value
			}
		}
	}

	return Info{
		Version:   version,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns the one-line form used by --version.
func (i Info) Short() string {
	if i.BuildTime != "unknown" && i.BuildTime != "" {
		return fmt.Sprintf("prgate %s (%s, %s, built %s)", i.Version, i.GoVersion, i.Platform, i.BuildTime)
	}
	return fmt.Sprintf("prgate %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}
