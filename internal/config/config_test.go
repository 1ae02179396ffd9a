package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Channel.BaseURL != "https://graph.facebook.com/v19.0" {
		t.Errorf("unexpected base url default: %q", cfg.Channel.BaseURL)
	}
	if cfg.Delivery.DefaultCountryCode != "65" {
		t.Errorf("unexpected country code default: %q", cfg.Delivery.DefaultCountryCode)
	}
	if cfg.Delivery.ReadyWaitSeconds == nil || *cfg.Delivery.ReadyWaitSeconds != 30 {
		t.Errorf("expected ready wait default 30, got %v", cfg.Delivery.ReadyWaitSeconds)
	}
	if cfg.Delivery.PaceMinutes == nil || *cfg.Delivery.PaceMinutes != 2 {
		t.Errorf("expected pace default 2, got %v", cfg.Delivery.PaceMinutes)
	}
}

func TestLoad_ExplicitZeroPacingSticks(t *testing.T) {
	path := writeConfig(t, "delivery:\n  ready_wait_seconds: 0\n  pace_minutes: 0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Delivery.ReadyWaitSeconds == nil || *cfg.Delivery.ReadyWaitSeconds != 0 {
		t.Errorf("explicit ready_wait_seconds: 0 must survive defaulting, got %v", cfg.Delivery.ReadyWaitSeconds)
	}
	if cfg.Delivery.PaceMinutes == nil || *cfg.Delivery.PaceMinutes != 0 {
		t.Errorf("explicit pace_minutes: 0 must survive defaulting, got %v", cfg.Delivery.PaceMinutes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero pacing is a valid choice: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PACE_MINUTES", "0.5")
	t.Setenv("DEFAULT_COUNTRY_CODE", "44")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Delivery.PaceMinutes == nil || *cfg.Delivery.PaceMinutes != 0.5 {
		t.Errorf("expected pace 0.5 from env, got %v", cfg.Delivery.PaceMinutes)
	}
	if cfg.Delivery.DefaultCountryCode != "44" {
		t.Errorf("expected country code 44 from env, got %q", cfg.Delivery.DefaultCountryCode)
	}
}

func TestValidate(t *testing.T) {
	path := writeConfig(t, "delivery:\n  pace_minutes: -1\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("negative pace must fail validation")
	}

	path = writeConfig(t, "delivery:\n  default_country_code: \"+65\"\n")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("non-digit country code must fail validation")
	}
}

func TestValidateChannel(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.ValidateChannel(); err == nil {
		t.Error("missing credentials must fail channel validation")
	}

	cfg.Channel.PhoneID = "12345"
	cfg.Channel.AccessToken = "token"
	if err := cfg.ValidateChannel(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
