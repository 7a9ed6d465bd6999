package config

import (
	"path/filepath"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	tmp := t.TempDir()

	// 1. Write default config
	cfgPath := filepath.Join(tmp, "trumparr", "config.toml")
	if err := WriteDefault(cfgPath, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	// 2. Set env vars referenced by the template (t.Setenv auto-restores on cleanup)
	t.Setenv("RADARR_API_KEY", "test-radarr-key")
	t.Setenv("SONARR_API_KEY", "test-sonarr-key")
	t.Setenv("AITHER_API_KEY", "test-aither-key")

	// 3. Load and validate
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 4. Verify env substitution worked for the tracker
	if cfg.Tracker["aither"].APIKey != "test-aither-key" {
		t.Errorf("expected aither key substituted, got %q", cfg.Tracker["aither"].APIKey)
	}

	// 5. Verify defaults applied
	if cfg.SleepTimer != 10 {
		t.Errorf("expected default sleep_timer 10, got %d", cfg.SleepTimer)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	sleep := 0
	out := "/tmp/reports"

	cfg.ApplyOverrides(Overrides{Sonarr: true, SleepTimer: &sleep, OutputPath: &out})

	if cfg.Radarr.Enabled {
		t.Error("expected radarr disabled when only --sonarr is given")
	}
	if !cfg.Sonarr.Enabled {
		t.Error("expected sonarr enabled")
	}
	if cfg.SleepTimer != 0 {
		t.Errorf("expected sleep_timer 0, got %d", cfg.SleepTimer)
	}
	if cfg.LogFiles.OutputPath != out {
		t.Errorf("expected output path override, got %s", cfg.LogFiles.OutputPath)
	}
	if cfg.LogFiles.ScriptLog != "script.log" {
		t.Errorf("expected script log untouched, got %s", cfg.LogFiles.ScriptLog)
	}
}

func TestApplyOverrides_NoLibraryFlagsKeepsFile(t *testing.T) {
	cfg := Default()
	cfg.Sonarr.Enabled = false

	cfg.ApplyOverrides(Overrides{})

	if !cfg.Radarr.Enabled || cfg.Sonarr.Enabled {
		t.Errorf("expected file values kept, got radarr=%v sonarr=%v", cfg.Radarr.Enabled, cfg.Sonarr.Enabled)
	}
}
