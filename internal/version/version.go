package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time, e.g.
//
//	go build -ldflags="-X github.com/muurk/sportsdash/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/sportsdash/internal/version.Commit=abc123"
//
// Anything left empty is filled from the build info at startup.
var (
	Version = ""
	Commit  = ""

	// GoVersion is the toolchain the binary was built with
	GoVersion = ""
)

// develVersion is what the toolchain records for the main module when it
// is built from a checkout rather than installed at a tagged version
const develVersion = "(devel)"

func init() {
	info, _ := debug.ReadBuildInfo()
	b := resolve(info, time.Now())
	if Version == "" {
		Version = b.Version
	}
	if Commit == "" {
		Commit = b.Commit
	}
	GoVersion = b.GoVersion
}

// build is the version information derived from one binary
type build struct {
	Version   string
	Commit    string
	GoVersion string
}

// resolve derives the version from build info. Module versions from
// `go install ...@vX` win; checkouts get dev-<commit date>, and binaries
// without VCS stamps get dev-<now>.
func resolve(info *debug.BuildInfo, now time.Time) build {
	b := build{Commit: "unknown"}
	if info == nil {
		b.Version = "dev-" + now.Format("20060102-150405")
		return b
	}
	b.GoVersion = info.GoVersion

	vcs := map[string]string{}
	for _, s := range info.Settings {
		if strings.HasPrefix(s.Key, "vcs.") {
			vcs[s.Key] = s.Value
		}
	}
	if rev := vcs["vcs.revision"]; rev != "" {
		b.Commit = rev[:min(7, len(rev))]
		if vcs["vcs.modified"] == "true" {
			b.Commit += "-dirty"
		}
	}

	switch {
	case info.Main.Version != "" && info.Main.Version != develVersion:
		b.Version = info.Main.Version
	case vcs["vcs.time"] != "":
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			b.Version = "dev-" + t.UTC().Format("20060102")
		}
	}
	if b.Version == "" {
		b.Version = "dev-" + now.Format("20060102-150405")
	}
	return b
}

// Full returns the version with its commit and toolchain
func Full() string {
	if GoVersion == "" {
		return fmt.Sprintf("%s (commit: %s)", Version, Commit)
	}
	return fmt.Sprintf("%s (commit: %s, %s)", Version, Commit, GoVersion)
}

// UserAgent returns the User-Agent header sent to the data service
func UserAgent() string {
	return fmt.Sprintf("sportsdash/%s (+%s)", Version, Commit)
}
