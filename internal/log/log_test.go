package log

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	colors, debug, prev := EnableColors, EnableDebug, output
	EnableColors = false
	SetOutput(&buf)
	t.Cleanup(func() {
		EnableColors, EnableDebug = colors, debug
		SetOutput(prev)
	})
	return &buf
}

func TestDebugGated(t *testing.T) {
	buf := captureOutput(t)

	EnableDebug = false
	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug output while disabled: %q", buf.String())
	}

	EnableDebug = true
	Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), PrefixDebug) || !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("missing debug line: %q", buf.String())
	}
}

func TestLevelsPrefixed(t *testing.T) {
	buf := captureOutput(t)

	Infof("info")
	Errorln("error")
	out := buf.String()
	if !strings.Contains(out, PrefixInfo) || !strings.Contains(out, PrefixError) {
		t.Fatalf("missing prefixes: %q", out)
	}
}
