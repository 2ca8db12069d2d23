package version

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version == "" || info.GitCommit == "" || info.BuildDate == "" || info.GoVersion == "" {
		t.Fatalf("expected non-empty version info")
	}
}

func TestGetShortCommit(t *testing.T) {
	orig := GitCommit
	t.Cleanup(func() { GitCommit = orig })

	GitCommit = "abcdef123456"
	if GetShortCommit() != "abcdef1" {
		t.Fatalf("expected short commit")
	}
	GitCommit = "abc"
	if GetShortCommit() != "abc" {
		t.Fatalf("expected short commits to pass through")
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.3", GitCommit: "abcdef123456", BuildDate: "2026-01-01", GoVersion: "go1.24"}
	s := info.String()
	if !strings.Contains(s, "v1.2.3") || !strings.Contains(s, "abcdef1") || strings.Contains(s, "abcdef12") {
		t.Fatalf("unexpected version string %q", s)
	}
}
