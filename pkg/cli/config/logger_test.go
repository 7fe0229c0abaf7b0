package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/herald-bot/herald/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		json    bool
		wantErr bool
	}{
		{name: "Debug level", level: "debug"},
		{name: "Info level", level: "info"},
		{name: "Warn level", level: "warn"},
		{name: "Error level", level: "error"},
		{name: "Mixed case", level: "INFO"},
		{name: "JSON output", level: "info", json: true},
		{name: "Unknown level", level: "verbose", wantErr: true},
		{name: "Empty level", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Logger{Level: tt.level, JSON: tt.json}
			logger, err := cfg.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.NotNil(t, logger)
		})
	}
}
