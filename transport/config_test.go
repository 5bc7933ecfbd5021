package transport

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != defaultTimeout {
		t.Errorf("expected default timeout %v, got %v", defaultTimeout, cfg.Timeout)
	}

	cfg = Config{Timeout: 5 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 5*time.Second {
		t.Errorf("explicit timeout should be kept, got %v", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Timeout: time.Second}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = Config{Timeout: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}

	cfg = Config{Timeout: time.Second, TLS: &TLSConfig{CertFile: "cert.pem"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for cert without key")
	}
}
