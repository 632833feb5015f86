package settings

import (
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/headercommenter/header"
	"go.jacobcolvin.com/headercommenter/log"
	"go.jacobcolvin.com/headercommenter/workspace"
)

// Targets are the configs a [File] is applied to. Nil targets are skipped.
type Targets struct {
	Header    *header.Config
	Workspace *workspace.Config
	Log       *log.Config
}

// Apply copies the values set in f into t. A value is skipped when the flag
// it corresponds to was set on flags, so the command line always wins.
func (f *File) Apply(flags *pflag.FlagSet, t Targets) {
	unset := func(name string) bool {
		return flags == nil || !flags.Changed(name)
	}

	if h := t.Header; h != nil {
		if f.Width != 0 && unset(h.Flags.Width) {
			h.Width = f.Width
		}

		if f.Domain != "" && unset(h.Flags.Domain) {
			h.Domain = f.Domain
		}

		if f.Organization != "" && unset(h.Flags.Organization) {
			h.Organization = f.Organization
		}

		if f.EscapeAt != nil && unset(h.Flags.EscapeAt) {
			h.EscapeAt = *f.EscapeAt
		}
	}

	if w := t.Workspace; w != nil {
		if len(f.Extensions) > 0 && unset(w.Flags.Extensions) {
			w.Extensions = append([]string(nil), f.Extensions...)
		}

		if f.StateFile != "" && unset(w.Flags.StateFile) {
			w.StateFile = f.StateFile
		}
	}

	if l := t.Log; l != nil {
		if f.LogLevel != "" && unset(l.Flags.Level) {
			l.Level = f.LogLevel
		}

		if f.LogFormat != "" && unset(l.Flags.Format) {
			l.Format = f.LogFormat
		}
	}
}
