package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Data != "portfolio.json" {
		t.Errorf("Data = %q, want portfolio.json", cfg.Data)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.FPS)
	}
	if !cfg.Mouse {
		t.Error("Mouse should default to true")
	}
	if cfg.Sound {
		t.Error("Sound should default to false")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_DATA", "https://example.com/p.json")
	t.Setenv("FOLIO_FPS", "60")
	t.Setenv("FOLIO_MOUSE", "false")
	t.Setenv("FOLIO_DEBUG", "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Data != "https://example.com/p.json" {
		t.Errorf("Data = %q", cfg.Data)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.Mouse {
		t.Error("Mouse should be false")
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestFromEnvClampsFPS(t *testing.T) {
	t.Setenv("FOLIO_FPS", "0")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.FPS != 1 {
		t.Errorf("FPS = %d, want clamp to 1", cfg.FPS)
	}

	t.Setenv("FOLIO_FPS", "500")
	cfg, err = FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.FPS != 120 {
		t.Errorf("FPS = %d, want clamp to 120", cfg.FPS)
	}
}
