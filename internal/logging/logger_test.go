package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	defer SetLogger(nil)

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("silent logger should not enable any level")
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	defer SetLogger(nil)

	path := filepath.Join(t.TempDir(), "numpad.log")
	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	LogFocus("field-1", "focus")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "field-1") {
		t.Errorf("log file missing field id, got: %s", data)
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogFocus("a", "blur")
	LogKey("a", "5", "12.5")
	LogVisibility("keypad", "visible", 3)

	if logs.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", logs.Len())
	}
	key := logs.FilterMessage("Key dispatched").All()
	if len(key) != 1 || key[0].ContextMap()["buffer"] != "12.5" {
		t.Errorf("unexpected key entry: %+v", key)
	}
	vis := logs.FilterMessage("Visibility transition").All()
	if len(vis) != 1 || vis[0].ContextMap()["seq"] != uint64(3) {
		t.Errorf("unexpected visibility entry: %+v", vis)
	}
}
