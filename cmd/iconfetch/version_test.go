package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	if !strings.HasPrefix(out.String(), "iconfetch version ") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "commit: ") {
		t.Errorf("output misses commit line: %q", out.String())
	}
}

func TestGetVersion(t *testing.T) {
	old := version
	defer func() { version = old }()

	version = "v1.2.3"
	if got := getVersion(); got != "v1.2.3" {
		t.Errorf("getVersion() = %q, want ldflags value", got)
	}
	version = ""
	if got := getVersion(); got == "" {
		t.Error("getVersion() returned empty string")
	}
}
