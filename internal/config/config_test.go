// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"boxing-timer/internal/session"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultPreset != "" || len(cfg.Presets) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxing-timer", "config.yaml")

	var cfg Config
	cfg.Upsert(Preset{Name: "sparring", Rounds: 6, RoundSeconds: 120, RestSeconds: 30, WarmupSeconds: 0})
	cfg.Upsert(Preset{Name: "quiet", Rounds: 1, RoundSeconds: 60, NoBell: true})
	if err := cfg.SetDefault("sparring"); err != nil {
		t.Fatal(err)
	}

	if err := SaveConfigTo(path, cfg); err != nil {
		t.Fatalf("SaveConfigTo() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0640 {
		t.Errorf("file mode = %o, want 640", perm)
	}

	loaded, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	if loaded.DefaultPreset != "sparring" {
		t.Errorf("DefaultPreset = %q", loaded.DefaultPreset)
	}
	quiet, err := loaded.Find("quiet")
	if err != nil {
		t.Fatal(err)
	}
	if quiet.Session().Bell {
		t.Error("quiet preset should have the bell disabled")
	}
	if len(loaded.Presets) != 2 {
		t.Errorf("got %d presets, want 2", len(loaded.Presets))
	}
}

func TestLoadConfigFromParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `default_preset: amateur
presets:
  - name: amateur
    rounds: 3
    round_seconds: 120
    rest_seconds: 60
    warmup_seconds: 10
`
	if err := os.WriteFile(path, []byte(data), 0640); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := cfg.Find("amateur")
	if err != nil {
		t.Fatal(err)
	}
	want := session.Config{Rounds: 3, RoundSeconds: 120, RestSeconds: 60, WarmupSeconds: 10, Bell: true}
	if p.Session() != want {
		t.Fatalf("Session() = %+v, want %+v", p.Session(), want)
	}
}

func TestLoadConfigFromErrors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("presets: [oops"), 0640); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFrom(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
			t.Fatalf("expected parse error, got %v", err)
		}
	})

	t.Run("invalid preset values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := "presets:\n  - name: broken\n    rounds: 0\n"
		if err := os.WriteFile(path, []byte(data), 0640); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfigFrom(path)
		if !errors.Is(err, session.ErrInvalidRounds) {
			t.Fatalf("expected %v, got %v", session.ErrInvalidRounds, err)
		}
	})
}

func TestUpsertReplacesInPlace(t *testing.T) {
	var cfg Config
	cfg.Upsert(Preset{Name: "a", Rounds: 1})
	cfg.Upsert(Preset{Name: "b", Rounds: 2})
	cfg.Upsert(Preset{Name: "a", Rounds: 9})

	if len(cfg.Presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(cfg.Presets))
	}
	if cfg.Presets[0].Name != "a" || cfg.Presets[0].Rounds != 9 {
		t.Fatalf("preset a not replaced in place: %+v", cfg.Presets)
	}
}

func TestRemove(t *testing.T) {
	cfg := Config{
		DefaultPreset: "a",
		Presets:       []Preset{{Name: "a", Rounds: 1}, {Name: "b", Rounds: 1}},
	}
	if err := cfg.Remove("a"); err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultPreset != "" {
		t.Errorf("removing the default preset should clear it, got %q", cfg.DefaultPreset)
	}
	if err := cfg.Remove("a"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("second Remove() = %v, want %v", err, ErrPresetNotFound)
	}
	if _, err := cfg.Find("b"); err != nil {
		t.Errorf("preset b should survive: %v", err)
	}
}

func TestSetDefault(t *testing.T) {
	cfg := Config{Presets: []Preset{{Name: "a", Rounds: 1}}}
	if err := cfg.SetDefault("missing"); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("SetDefault(missing) = %v", err)
	}
	if err := cfg.SetDefault("a"); err != nil || cfg.DefaultPreset != "a" {
		t.Fatalf("SetDefault(a) = %v, default %q", err, cfg.DefaultPreset)
	}
	if err := cfg.SetDefault(""); err != nil || cfg.DefaultPreset != "" {
		t.Fatalf("SetDefault(\"\") = %v, default %q", err, cfg.DefaultPreset)
	}
}

func TestValidatePresetName(t *testing.T) {
	for _, name := range []string{"", "two words", "tab\tname", " lead"} {
		if err := ValidatePresetName(name); !errors.Is(err, ErrInvalidPresetName) {
			t.Errorf("ValidatePresetName(%q) = %v, want %v", name, err, ErrInvalidPresetName)
		}
	}
	for _, name := range []string{"sparring", "pro-12x3", "hiit_30"} {
		if err := ValidatePresetName(name); err != nil {
			t.Errorf("ValidatePresetName(%q) = %v", name, err)
		}
	}
}

func TestPresetFromSession(t *testing.T) {
	cfg := session.Config{Rounds: 4, RoundSeconds: 90, RestSeconds: 15, WarmupSeconds: 5, Bell: false}
	p := PresetFromSession("hiit", cfg)
	if !p.NoBell {
		t.Error("NoBell should mirror a disabled bell")
	}
	if p.Session() != cfg {
		t.Fatalf("round trip = %+v, want %+v", p.Session(), cfg)
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "boxing-timer", "config.yaml"); path != want {
		t.Fatalf("DefaultConfigPath() = %q, want %q", path, want)
	}
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/timer.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "timer.yaml"); got != want {
		t.Errorf("ResolvePath(~/timer.yaml) = %q, want %q", got, want)
	}
	if got, _ := ResolvePath("/etc/timer.yaml"); got != "/etc/timer.yaml" {
		t.Errorf("absolute path changed: %q", got)
	}
}
