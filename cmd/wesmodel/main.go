package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/speakeasy-api/wes/cmd/wesmodel/commands"
	"github.com/speakeasy-api/wes/system"
)

// Set via ldflags by release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// resolveBuildInfo prefers ldflags values and falls back to the module and
// VCS metadata embedded by the go toolchain.
func resolveBuildInfo() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date}
	if version != "dev" || commit != "none" || date != "unknown" {
		return info
	}

	embedded, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := embedded.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range embedded.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value[:min(7, len(s.Value))]
		case "vcs.time":
			info.Date = s.Value
		}
	}
	return info
}

func (b buildInfo) template() string {
	lines := []string{`{{printf "%s" .Version}}`}
	if b.Commit != "" && b.Commit != "none" {
		lines = append(lines, "Build: "+b.Commit)
	}
	if b.Date != "" && b.Date != "unknown" {
		lines = append(lines, "Built: "+b.Date)
	}
	return strings.Join(lines, "\n") + "\n"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := resolveBuildInfo()

	rootCmd := commands.NewRootCommand(&system.FileSystem{}, ".")
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(info.template())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
