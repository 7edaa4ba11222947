// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package session

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"defaults", DefaultConfig(), nil},
		{"all zero durations", Config{Rounds: 1}, nil},
		{"zero rounds", Config{Rounds: 0, RoundSeconds: 10}, ErrInvalidRounds},
		{"negative rounds", Config{Rounds: -3}, ErrInvalidRounds},
		{"negative round seconds", Config{Rounds: 1, RoundSeconds: -1}, ErrNegativeRoundSeconds},
		{"negative rest", Config{Rounds: 1, RestSeconds: -1}, ErrNegativeRestSeconds},
		{"negative warmup", Config{Rounds: 1, WarmupSeconds: -1}, ErrNegativeWarmup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rounds != 3 || cfg.RoundSeconds != 180 || cfg.RestSeconds != 60 || cfg.WarmupSeconds != 10 || !cfg.Bell {
		t.Fatalf("DefaultConfig() = %+v", cfg)
	}
}
