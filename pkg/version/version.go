package version

import (
	"fmt"
	"runtime"
)

// Set at build time through -ldflags "-X".
var (
	Version   = "0.1.0"
	AppName   = "RuleGuard"
	Commit    = "none"
	BuildDate = "unknown"
)

type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s %s)",
		i.AppName, i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
