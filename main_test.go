package main

import (
	"strings"
	"testing"

	"github.com/mossfell/catdash/config"
)

func TestParseGoVersion(t *testing.T) {
	tests := []struct {
		in    string
		major int
		minor int
		ok    bool
	}{
		{"go1.24.5", 1, 24, true},
		{"go1.24", 1, 24, true},
		{"go2.0", 2, 0, true},
		{"go1", 0, 0, false},
		{"go1.x", 0, 0, false},
		{"devel +abc1234", 0, 0, false},
		{"gccgo (GCC) 12.2.0", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		major, minor, ok := parseGoVersion(tt.in)
		if ok != tt.ok || major != tt.major || minor != tt.minor {
			t.Errorf("parseGoVersion(%q) = %d, %d, %v, want %d, %d, %v",
				tt.in, major, minor, ok, tt.major, tt.minor, tt.ok)
		}
	}
}

func TestCheckGoVersion(t *testing.T) {
	// Nonstandard strings (devel, gccgo) are let through on purpose.
	pass := []string{"go1.24.0", "go1.24.5", "go1.25", "go2.0", "devel +abc1234", "go1"}
	for _, v := range pass {
		if err := checkGoVersion(v); err != nil {
			t.Errorf("checkGoVersion(%q) = %v, want nil", v, err)
		}
	}

	fail := []string{"go1.23.4", "go1.0", "go0.9"}
	for _, v := range fail {
		err := checkGoVersion(v)
		if err == nil {
			t.Errorf("checkGoVersion(%q) passed, want error", v)
			continue
		}
		if !strings.Contains(err.Error(), v) {
			t.Errorf("Error does not name the offending version: %v", err)
		}
	}
}

func TestThemeFlagSelectsTheme(t *testing.T) {
	oldFlag := flagTheme
	oldActive := config.Background.ActiveTheme
	t.Cleanup(func() {
		flagTheme = oldFlag
		config.Background.ActiveTheme = oldActive
	})

	flagTheme = "NIGHT" // matching ignores case
	if err := applyFlags(); err != nil {
		t.Fatal(err)
	}
	if config.Background.ActiveTheme != 2 {
		t.Errorf("ActiveTheme = %d, want 2", config.Background.ActiveTheme)
	}

	flagTheme = "space"
	err := applyFlags()
	if err == nil {
		t.Fatal("Expected an error for an unknown theme")
	}
	if !strings.Contains(err.Error(), "space") || !strings.Contains(err.Error(), "meadow") {
		t.Errorf("Error should name the bad theme and the valid ones: %v", err)
	}
}
