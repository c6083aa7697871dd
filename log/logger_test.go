package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("sess-1", "activate").WithOutput(&buf)

	logger.Debug("run finished", map[string]any{"run": 1})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["session_id"] != "sess-1" {
		t.Errorf("session_id = %v, want sess-1", entry["session_id"])
	}
	if entry["branch_preference"] != "activate" {
		t.Errorf("branch_preference = %v, want activate", entry["branch_preference"])
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v, want debug", entry["level"])
	}
	if entry["message"] != "run finished" {
		t.Errorf("message = %v, want %q", entry["message"], "run finished")
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("sess-1", "activate").WithOutput(&buf)

	logger.Info("info message", nil)
	logger.Warn("warn message", nil)
	logger.Error("error message", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d log lines, want 3", len(lines))
	}
	for i, level := range []string{"info", "warn", "error"} {
		var entry map[string]any
		if err := json.Unmarshal([]byte(lines[i]), &entry); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if entry["level"] != level {
			t.Errorf("line %d level = %v, want %s", i, entry["level"], level)
		}
	}
}

func TestSugaredLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("sess-1", "skip").WithOutput(&buf)

	logger.Sugar().Infof("run %d of %d", 2, 4)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["message"] != "run 2 of 4" {
		t.Errorf("message = %v, want %q", entry["message"], "run 2 of 4")
	}
}
