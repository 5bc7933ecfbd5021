package logger

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("vcd")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.name != "vcd" {
		t.Errorf("expected name 'vcd', got %q", l.name)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stderr",
	}
	l := New(cfg, "vcd")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stderr",
	}
	l := New(cfg, "vcd")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("VCD_LOG_LEVEL", "debug")
	os.Setenv("VCD_LOG_FORMAT", "json")
	defer os.Unsetenv("VCD_LOG_LEVEL")
	defer os.Unsetenv("VCD_LOG_FORMAT")

	l := NewFromEnv("vcd")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Info("discarded")
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("vcd")
	cl := l.WithComponent("client")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.name != "vcd" {
		t.Errorf("name should be preserved, got %q", cl.name)
	}
}

func TestWithFields(t *testing.T) {
	l := NewDefault("vcd")
	fl := l.WithFields(map[string]interface{}{"key": "value"})
	if fl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithError(t *testing.T) {
	l := NewDefault("vcd")
	el := l.WithError(errors.New("login rejected"))
	if el == nil {
		t.Fatal("expected non-nil logger")
	}
	if nl := l.WithError(nil); nl == nil {
		t.Fatal("expected non-nil logger for nil error")
	}
}

func TestGetLogger(t *testing.T) {
	l := Nop()
	zl := l.GetLogger()
	zl.Info().Msg("discarded")
}

func TestDefaultAndSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	replacement := Nop()
	SetDefault(replacement)
	if Default() != replacement {
		t.Error("expected SetDefault to replace the package logger")
	}

	SetDefault(nil)
	if Default() != replacement {
		t.Error("SetDefault(nil) should keep the current logger")
	}

	Debug("smoke")
	Info("smoke")
	Warn("smoke")
	Error("smoke")
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 {
		t.Errorf("expected a=1, got %v", m["a"])
	}
	if m["b"] != "two" {
		t.Errorf("expected b=two, got %v", m["b"])
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("logout", errors.New("session expired"))
	if m[FieldOperation] != "logout" {
		t.Errorf("expected operation logout, got %v", m[FieldOperation])
	}
	if m[FieldError] != "session expired" {
		t.Errorf("expected error message, got %v", m[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("wait", 1500*time.Millisecond)
	if m[FieldOperation] != "wait" {
		t.Errorf("expected operation wait, got %v", m[FieldOperation])
	}
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %d", len(m))
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}
