package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: WarnLevel, Output: &buf})

	logger.Debug("ignored", nil)
	logger.Info("ignored too", nil)
	logger.Warn("kept", nil)
	logger.Error("also kept", nil)

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "also kept") {
		t.Errorf("output missing warn/error messages: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"ERROR", ErrorLevel},
		{"", InfoLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if DebugLevel.String() != "debug" || ErrorLevel.String() != "error" {
		t.Errorf("level names wrong: %s %s", DebugLevel, ErrorLevel)
	}
	if DebugLevel >= InfoLevel || WarnLevel >= ErrorLevel {
		t.Error("levels should order debug < info < warn < error")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: JSONFormat, Level: DebugLevel, Output: &buf})

	logger.Info("pruned region", Fields{"region": "main", "removed": 42})

	var entry struct {
		Level   string         `json:"level"`
		Message string         `json:"message"`
		Fields  map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry.Level != "info" || entry.Message != "pruned region" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Fields["region"] != "main" {
		t.Errorf("fields = %v", entry.Fields)
	}
}

func TestHumanFormatFieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: InfoLevel, Output: &buf})

	logger.Info("leak detected", Fields{"generation": 12, "cell": "(1, 2, 3)", "region": "main"})

	out := buf.String()
	if !strings.Contains(out, "[info]") {
		t.Errorf("unexpected human output: %q", out)
	}
	want := "cell=(1, 2, 3) generation=12 region=main"
	if !strings.Contains(out, want) {
		t.Errorf("fields should be key-sorted, got: %q", out)
	}
}
