package app

import (
	"fmt"
	"strings"
)

// Stamped by the release build:
// go build -ldflags "-X github.com/dkozTA/thai-dict-web/internal/app.Version=1.2.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by /health, dictctl version and the MCP server
// handshake. Unstamped parts are left out, so a local build reads "dev".
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime)
}

func formatVersion(version, commit, built string) string {
	var extra []string
	if commit != "" && commit != "unknown" {
		extra = append(extra, "commit: "+commit)
	}
	if built != "" && built != "unknown" {
		extra = append(extra, "built: "+built)
	}
	if len(extra) == 0 {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(extra, ", "))
}
