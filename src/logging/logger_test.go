package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	savedLevel := GetLogLevel()
	t.Cleanup(func() {
		baseLogger = saved
		currentLevel = int32(savedLevel)
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("info")

	msg := "rational_neumann diff max=1.25% mean=0.40% median=0.31%"
	Infof(msg)
	For("batch").Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "max=1.25%") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if !strings.Contains(out, "[INFO] [batch] rational_neumann diff max=1.25%") {
		t.Fatalf("scoped line missing: %s", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t)
	if !SetLogLevel("warn") {
		t.Fatalf("warn should be a known level")
	}
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("lines below warn must be dropped: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("missing warn/error lines: %s", out)
	}
}

func TestSetLogLevel_UnknownKeepsCurrent(t *testing.T) {
	captureLogs(t)
	SetLogLevel("debug")
	if SetLogLevel("verbose") {
		t.Fatalf("verbose is not a level")
	}
	if GetLogLevel() != LevelDebug {
		t.Fatalf("level changed on unknown name: %v", GetLogLevel())
	}
}

func TestScope_TagsAndFields(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("debug")

	batch := For("batch")
	pair := batch.With("pair", "exponent_nystrom")
	pair.Errorf("load: %v", "missing file")
	pair.Debugf("took %dms", 12)
	batch.Warnf("3 of %d pairs failed", 8)

	out := buf.String()
	for _, want := range []string{
		"[ERROR] [batch pair=exponent_nystrom] load: missing file",
		"[DEBUG] [batch pair=exponent_nystrom] took 12ms",
		"[WARN] [batch] 3 of 8 pairs failed",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(batch.tag, "pair=") {
		t.Fatalf("With must not modify the parent scope: %q", batch.tag)
	}
}

func TestScope_FilteredByGlobalLevel(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("error")
	For("viewer").Infof("saved %s", "x.png")
	if buf.Len() != 0 {
		t.Fatalf("info line printed at error level: %s", buf.String())
	}
}
