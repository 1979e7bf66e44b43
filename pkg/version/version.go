// Package version exposes build metadata set through -ldflags, e.g.
//
//	go build -ldflags "-X github.com/killallgit/xianplay-api/pkg/version.Version=1.2.0"
package version

import "runtime"

// Name is the product name reported by the CLI and the API root
const Name = "XianPlay API"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info is a snapshot of the build metadata
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the current build metadata
func Get() Info {
	return Info{
		Name:      Name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
