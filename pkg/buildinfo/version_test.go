package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolved(t *testing.T) {
	orig, origRead := Version, readBuildInfo
	t.Cleanup(func() { Version, readBuildInfo = orig, origRead })

	tests := []struct {
		name    string
		stamped string
		module  string
		ok      bool
		want    string
	}{
		{"stamped", "v1.0.0", "v0.9.0", true, "v1.0.0"},
		{"module version", "dev", "v0.9.0", true, "v0.9.0"},
		{"devel build", "dev", "(devel)", true, "dev"},
		{"no build info", "dev", "", false, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.stamped
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return &debug.BuildInfo{Main: debug.Module{Version: tt.module}}, tt.ok
			}
			if got := Resolved(); got != tt.want {
				t.Errorf("Resolved() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version ") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("String() = %q", got)
	}
}
