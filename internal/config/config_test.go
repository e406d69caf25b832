package config

import (
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/recipsum/internal/errors"
)

var testAlgos = []string{"sequential", "forkjoin", "fanout"}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("recipsum", nil, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Size != DefaultSize {
		t.Errorf("Size = %d, want %d", cfg.Size, DefaultSize)
	}
	if cfg.Algo != DefaultAlgo {
		t.Errorf("Algo = %q, want %q", cfg.Algo, DefaultAlgo)
	}
	if cfg.Dist != DefaultDist {
		t.Errorf("Dist = %q, want %q", cfg.Dist, DefaultDist)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Threshold != 0 {
		t.Errorf("Threshold = %d, want 0 (engine default)", cfg.Threshold)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{"-size", "5000", "-tasks", "8", "-threshold", "256", "-algo", "fanout", "-dist", "ones", "-timeout", "30s", "-q"}
	cfg, err := ParseConfig("recipsum", args, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Size != 5000 || cfg.NumTasks != 8 || cfg.Threshold != 256 {
		t.Errorf("numeric flags not applied: %+v", cfg)
	}
	if cfg.Algo != "fanout" || cfg.Dist != "ones" {
		t.Errorf("string flags not applied: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet flag not applied")
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"SIZE", "777")
	t.Setenv(EnvPrefix+"ALGO", "forkjoin")
	t.Setenv(EnvPrefix+"STRICT", "yes")

	cfg, err := ParseConfig("recipsum", nil, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Size != 777 {
		t.Errorf("Size = %d, want env override 777", cfg.Size)
	}
	if cfg.Algo != "forkjoin" {
		t.Errorf("Algo = %q, want env override forkjoin", cfg.Algo)
	}
	if !cfg.Strict {
		t.Error("Strict env override not applied")
	}
}

// TestParseConfig_FlagBeatsEnv pins the resolution priority: an explicit
// flag wins over the environment.
func TestParseConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"SIZE", "777")

	cfg, err := ParseConfig("recipsum", []string{"-size", "123"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Size != 123 {
		t.Errorf("Size = %d, want flag value 123", cfg.Size)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	base := func() AppConfig {
		return AppConfig{Size: 100, Algo: "all", Dist: "uniform", Timeout: time.Minute}
	}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid defaults", func(c *AppConfig) {}, false},
		{"zero size without input file", func(c *AppConfig) { c.Size = 0 }, true},
		{"zero size with input file", func(c *AppConfig) { c.Size = 0; c.InputFile = "in.txt" }, false},
		{"negative tasks", func(c *AppConfig) { c.NumTasks = -1 }, true},
		{"negative threshold", func(c *AppConfig) { c.Threshold = -5 }, true},
		{"zero timeout", func(c *AppConfig) { c.Timeout = 0 }, true},
		{"unknown algo", func(c *AppConfig) { c.Algo = "quantum" }, true},
		{"named algo", func(c *AppConfig) { c.Algo = "fanout" }, false},
		{"unknown dist", func(c *AppConfig) { c.Dist = "cauchy" }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate(testAlgos)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil {
				var configErr apperrors.ConfigError
				if !errors.As(err, &configErr) {
					t.Errorf("expected ConfigError, got %T", err)
				}
			}
		})
	}
}

func TestApplyAdaptiveThresholds(t *testing.T) {
	t.Parallel()

	t.Run("adaptive off leaves threshold untouched", func(t *testing.T) {
		t.Parallel()
		cfg := ApplyAdaptiveThresholds(AppConfig{Threshold: 0})
		if cfg.Threshold != 0 {
			t.Errorf("Threshold = %d, want 0", cfg.Threshold)
		}
	})

	t.Run("adaptive on fills zero threshold", func(t *testing.T) {
		t.Parallel()
		cfg := ApplyAdaptiveThresholds(AppConfig{Adaptive: true})
		if cfg.Threshold == 0 {
			t.Error("Threshold should have been estimated")
		}
	})

	t.Run("explicit threshold is never replaced", func(t *testing.T) {
		t.Parallel()
		cfg := ApplyAdaptiveThresholds(AppConfig{Adaptive: true, Threshold: 42})
		if cfg.Threshold != 42 {
			t.Errorf("Threshold = %d, want 42", cfg.Threshold)
		}
	})
}

func TestEstimateLeafThreshold(t *testing.T) {
	t.Parallel()
	if EstimateLeafThreshold() <= 0 {
		t.Error("EstimateLeafThreshold should be positive")
	}
}
