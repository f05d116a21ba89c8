package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/ascii-invaders/core"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected default sample rate 22050, got %d", cfg.SampleRate)
	}
	if cfg.Output != OutputAuto {
		t.Errorf("Expected auto output, got %v", cfg.Output)
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if vol, ok := cfg.EffectVolumes[st]; !ok || vol != 1.0 {
			t.Errorf("Expected unity volume for %v, got %v (set=%v)", st, vol, ok)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSFXVolumes, "")
	t.Setenv(EnvAudioBackend, "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.Output != def.Output {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "40")
	t.Setenv(EnvSFXVolumes, `{"player_shoot": 0.5, "enemy_step": 2.0, "bogus": 0.1}`)
	t.Setenv(EnvAudioBackend, "PIPE")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false from env")
	}
	if cfg.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundPlayerShoot] != 0.5 {
		t.Errorf("Expected player shoot volume 0.5, got %f", cfg.EffectVolumes[core.SoundPlayerShoot])
	}
	if cfg.EffectVolumes[core.SoundEnemyStep] != 1.0 {
		t.Errorf("Expected enemy step volume clamped to 1.0, got %f", cfg.EffectVolumes[core.SoundEnemyStep])
	}
	if cfg.Output != OutputPipe {
		t.Errorf("Expected pipe output, got %v", cfg.Output)
	}
	if got := cfg.Volume(core.SoundPlayerShoot); got != 0.2 {
		t.Errorf("Expected effective volume 0.2, got %f", got)
	}
}

func TestLoadAudioConfigInvalidValues(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSFXVolumes, "{not json")
	t.Setenv(EnvAudioBackend, "radio")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Error("Invalid enabled value should keep default")
	}
	if cfg.MasterVolume != def.MasterVolume {
		t.Error("Invalid volume should keep default")
	}
	if cfg.Output != def.Output {
		t.Error("Invalid backend should keep default")
	}
}

func TestLoadAudioConfigVolumeClamp(t *testing.T) {
	tests := []struct {
		env    string
		expect float64
	}{
		{"150", 1.0},
		{"-20", 0.0},
		{"0", 0.0},
		{"100", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(EnvMasterVolume, tt.env)
			if got := LoadAudioConfig().MasterVolume; got != tt.expect {
				t.Errorf("Expected %f, got %f", tt.expect, got)
			}
		})
	}
}

func TestParseOutput(t *testing.T) {
	for _, name := range []string{"auto", "speaker", "pipe", "off"} {
		out, err := ParseOutput(name)
		if err != nil {
			t.Fatalf("ParseOutput(%q) failed: %v", name, err)
		}
		if out.String() != name {
			t.Errorf("Expected %q, got %q", name, out.String())
		}
	}

	if _, err := ParseOutput("radio"); !errors.Is(err, ErrUnknownOutput) {
		t.Errorf("Expected ErrUnknownOutput, got %v", err)
	}
}
