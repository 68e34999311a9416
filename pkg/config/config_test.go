package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
	if cfg.Pool.Workers != 4 {
		t.Errorf("default workers = %d, want 4", cfg.Pool.Workers)
	}
	if cfg.Driver.Evaluations != 11 {
		t.Errorf("default evaluations = %d, want 11", cfg.Driver.Evaluations)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evalpool.yaml")
	data := []byte(`
pool:
  workers: 8
driver:
  evaluations: 20
  log_level: debug
retry:
  initial_delay: 1ms
  max_delay: 50ms
  multiplier: 3
  max_attempts: 10
diagnostics:
  enabled: true
  addr: ":9191"
`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := Default()
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pool.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Pool.Workers)
	}
	if cfg.Driver.Evaluations != 20 {
		t.Errorf("evaluations = %d, want 20", cfg.Driver.Evaluations)
	}
	if !cfg.Diagnostics.Enabled || cfg.Diagnostics.Addr != ":9191" {
		t.Errorf("diagnostics = %+v, want enabled on :9191", cfg.Diagnostics)
	}

	policy, err := cfg.RetryPolicy()
	if err != nil {
		t.Fatalf("RetryPolicy() error = %v", err)
	}
	if policy.InitialDelay != time.Millisecond {
		t.Errorf("initial delay = %v, want 1ms", policy.InitialDelay)
	}
	if policy.MaxDelay != 50*time.Millisecond {
		t.Errorf("max delay = %v, want 50ms", policy.MaxDelay)
	}
	if policy.Multiplier != 3 {
		t.Errorf("multiplier = %v, want 3", policy.Multiplier)
	}
	if policy.MaxAttempts != 10 {
		t.Errorf("max attempts = %d, want 10", policy.MaxAttempts)
	}
}

func TestLoad_JSONByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evalpool.json")
	data := []byte(`{"pool":{"workers":2},"driver":{"evaluations":5,"log_level":"info"}}`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := Default()
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pool.Workers != 2 || cfg.Driver.Evaluations != 5 {
		t.Errorf("loaded %+v, want workers=2 evaluations=5", cfg)
	}
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	t.Setenv("EVALPOOL_WORKERS", "16")
	t.Setenv("EVALPOOL_EVALUATIONS", "3")
	t.Setenv("EVALPOOL_LOG_LEVEL", "error")
	t.Setenv("EVALPOOL_DIAG_ADDR", ":7070")

	cfg := Default()
	if err := LoadWithEnv("", &cfg); err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.Pool.Workers != 16 {
		t.Errorf("workers = %d, want 16", cfg.Pool.Workers)
	}
	if cfg.Driver.Evaluations != 3 {
		t.Errorf("evaluations = %d, want 3", cfg.Driver.Evaluations)
	}
	if cfg.Driver.LogLevel != "error" {
		t.Errorf("log level = %q, want error", cfg.Driver.LogLevel)
	}
	if !cfg.Diagnostics.Enabled || cfg.Diagnostics.Addr != ":7070" {
		t.Errorf("diagnostics = %+v, want enabled on :7070", cfg.Diagnostics)
	}
}

func TestLoadWithEnv_BadInteger(t *testing.T) {
	t.Setenv("EVALPOOL_WORKERS", "many")

	cfg := Default()
	if err := LoadWithEnv("", &cfg); err == nil {
		t.Error("LoadWithEnv() should fail on a non-integer override")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*File)
		frag   string
	}{
		{"zero workers", func(f *File) { f.Pool.Workers = 0 }, "pool.workers"},
		{"negative evaluations", func(f *File) { f.Driver.Evaluations = -1 }, "driver.evaluations"},
		{"bad delay", func(f *File) { f.Retry.InitialDelay = "soon" }, "retry.initial_delay"},
		{"diag without addr", func(f *File) {
			f.Diagnostics.Enabled = true
			f.Diagnostics.Addr = ""
		}, "diagnostics.addr"},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: Validate() should fail", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.frag) {
			t.Errorf("%s: error %q should mention %q", tc.name, err, tc.frag)
		}
	}
}

func TestSaveYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := Default()
	want.Pool.Workers = 6

	if err := SaveYAML(path, want); err != nil {
		t.Fatalf("SaveYAML() error = %v", err)
	}

	var got File
	if err := LoadYAML(path, &got); err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	if got.Pool.Workers != 6 {
		t.Errorf("workers after round trip = %d, want 6", got.Pool.Workers)
	}
}
