package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLevel verifies LOG_LEVEL parsing is case-insensitive and defaults to info.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		env    string
		expect zapcore.Level
	}{
		{"", zap.InfoLevel},
		{"INFO", zap.InfoLevel},
		{"debug", zap.DebugLevel},
		{"  warn  ", zap.WarnLevel},
		{"ERROR", zap.ErrorLevel},
		{"verbose", zap.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.env); got != tt.expect {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.env, got, tt.expect)
		}
	}
}

// TestReplace verifies that Replace routes package level helpers to the given logger
// and that the returned function restores the previous one.
func TestReplace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := Replace(zap.New(core))

	Info("structured", zap.String("city", "Pune"))
	Warnf("formatted %d", 7)

	restore()
	Info("after restore")

	if logs.Len() != 2 {
		t.Fatalf("observed %d entries, want 2", logs.Len())
	}
	entries := logs.All()
	if entries[0].Message != "structured" || entries[0].ContextMap()["city"] != "Pune" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Message != "formatted 7" || entries[1].Level != zap.WarnLevel {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
