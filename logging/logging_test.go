package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	if Logger == nil {
		t.Fatalf("Logger should never be nil.")
	}
	// Must not panic or emit anything.
	Logger.Debug("quiet")
}

func TestLoggerIsReplaceable(t *testing.T) {
	old := Logger
	defer func() { Logger = old }()

	core, logs := observer.New(zap.DebugLevel)
	Logger = zap.New(core)

	Logger.Debug("built distance table", zap.Int("points", 128))

	if logs.Len() != 1 {
		t.Fatalf("Expected 1 logged entry, got %d.", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "built distance table" {
		t.Errorf("Logged message was '%s'.", entry.Message)
	}
}

func TestMemString(t *testing.T) {
	s := MemString()
	for _, want := range []string{"Alloc", "Sys", "Integrated"} {
		if !strings.Contains(s, want) {
			t.Errorf("MemString() = '%s', missing '%s'.", s, want)
		}
	}
}
