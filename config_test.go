package keyframe

import (
	"testing"
	"time"
)

func TestConfigBuilderValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (Config, error)
		wantErr bool
	}{
		{"minimal valid", func() (Config, error) {
			return NewConfig().Duration(time.Second).Build()
		}, false},
		{"zero duration", func() (Config, error) {
			return NewConfig().Build()
		}, true},
		{"negative duration", func() (Config, error) {
			return NewConfig().Duration(-time.Second).Build()
		}, true},
		{"negative delay", func() (Config, error) {
			return NewConfig().Duration(time.Second).Delay(-time.Millisecond).Build()
		}, true},
		{"zero rate", func() (Config, error) {
			return NewConfig().Duration(time.Second).Rate(0).Build()
		}, true},
		{"negative rate", func() (Config, error) {
			return NewConfig().Duration(time.Second).Rate(-2).Build()
		}, true},
		{"zero cycles", func() (Config, error) {
			return NewConfig().Duration(time.Second).Cycles(0).Build()
		}, true},
		{"indefinite cycles", func() (Config, error) {
			return NewConfig().Duration(time.Second).Cycles(Indefinite).Build()
		}, false},
		{"full policy", func() (Config, error) {
			return NewConfig().
				Duration(2 * time.Second).
				Delay(200 * time.Millisecond).
				Rate(1.5).
				Cycles(4).
				AutoReverse(true).
				Build()
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Errorf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigBuilderDefaults(t *testing.T) {
	cfg, err := NewConfig().Duration(time.Second).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Rate != 1 {
		t.Errorf("Rate = %v, want 1", cfg.Rate)
	}
	if cfg.CycleCount != 1 {
		t.Errorf("CycleCount = %d, want 1", cfg.CycleCount)
	}
	if cfg.AutoReverse {
		t.Error("AutoReverse = true, want false")
	}
	if cfg.Delay != 0 {
		t.Errorf("Delay = %v, want 0", cfg.Delay)
	}
	if cfg.Interpolator == nil {
		t.Error("Interpolator = nil, want Linear")
	}
}
