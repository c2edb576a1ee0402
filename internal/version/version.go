// Package version carries the build identity of the catalog service. The
// release pipeline stamps the package-level variables through -ldflags; a
// binary built without them reports "unknown" everywhere.
package version

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Stamped at build time, e.g.
// -ldflags "-X github.com/BuildersAQP/api-comida-peru/internal/version.Version=v1.2.0".
var (
	Version   = "unknown"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info is the resolved build and runtime identity. InstanceID is generated
// fresh per process so replicas behind the same proxy stay distinguishable in
// logs and traces.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
	InstanceID string `json:"instance_id"`
	Hostname   string `json:"hostname"`
}

var (
	once sync.Once
	info Info
)

// GetInfo resolves the identity once and caches it for the process lifetime.
func GetInfo() Info {
	once.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		info = Info{
			Version:    Version,
			GitCommit:  GitCommit,
			BuildDate:  BuildDate,
			GoVersion:  runtime.Version(),
			InstanceID: uuid.New().String(),
			Hostname:   hostname,
		}
	})
	return info
}

// String formats the identity for the -version flag.
func (i Info) String() string {
	return fmt.Sprintf("api-comida-peru %s (commit %s, built %s, %s)",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion)
}
