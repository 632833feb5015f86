// Package version reports how the binary was built.
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/fatih/color"
)

var (
	// Version is the release version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision embedded by the Go toolchain.
	Revision = revision(debug.ReadBuildInfo)
)

var (
	nameColor  = color.New(color.FgCyan, color.Bold)
	labelColor = color.New(color.Faint)
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Revision  string `json:"revision"  yaml:"revision"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get returns the [Info] of the running binary.
func Get() Info {
	v := Version
	if v == "" {
		v = "dev"
	}

	return Info{
		Version:   v,
		Revision:  Revision,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Print writes a short report for the named program to w. Color is used only
// when w is a terminal, as decided by [color.NoColor].
func (i Info) Print(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%s %s\n", nameColor.Sprint(name), i.Version)
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"revision", i.Revision},
		{"built", i.BuildDate},
		{"go", i.GoVersion},
		{"platform", i.Platform},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}

		_, err = fmt.Fprintf(w, "  %s %s\n", labelColor.Sprintf("%-9s", r[0]), r[1])
		if err != nil {
			return err
		}
	}

	return nil
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	info, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
