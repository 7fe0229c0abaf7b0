package model_test

import (
	"testing"

	"github.com/herald-bot/herald/pkg/domain/model"
)

func TestParseDestination(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantPlatform string
		wantChannel  string
		wantErr      bool
	}{
		{
			name:         "Simple destination",
			input:        "onebot:123456",
			wantPlatform: "onebot",
			wantChannel:  "123456",
		},
		{
			name:         "Channel id containing colons",
			input:        "matrix:!room:example.org",
			wantPlatform: "matrix",
			wantChannel:  "!room:example.org",
		},
		{
			name:         "Slack channel",
			input:        "slack:C0123ABCDEF",
			wantPlatform: "slack",
			wantChannel:  "C0123ABCDEF",
		},
		{
			name:    "No delimiter",
			input:   "onebot",
			wantErr: true,
		},
		{
			name:    "Empty platform",
			input:   ":123456",
			wantErr: true,
		},
		{
			name:    "Empty channel",
			input:   "onebot:",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, err := model.ParseDestination(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDestination(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if dest.Platform != tt.wantPlatform {
				t.Errorf("Platform = %q, want %q", dest.Platform, tt.wantPlatform)
			}
			if dest.Channel != tt.wantChannel {
				t.Errorf("Channel = %q, want %q", dest.Channel, tt.wantChannel)
			}
			if dest.String() != tt.input {
				t.Errorf("String() = %q, want %q", dest.String(), tt.input)
			}
		})
	}
}

func TestRouteTable(t *testing.T) {
	table := model.NewRouteTable(map[string][]string{
		"octocat/hello-world": {"onebot:123", "slack:C01"},
		"octocat/spoon-knife": {"onebot:456"},
	})

	dests, ok := table.Lookup("octocat/hello-world")
	if !ok {
		t.Fatal("Lookup() should find configured repository")
	}
	if len(dests) != 2 || dests[0] != "onebot:123" || dests[1] != "slack:C01" {
		t.Errorf("Lookup() = %v, want ordered destinations", dests)
	}

	if _, ok := table.Lookup("a/b"); ok {
		t.Error("Lookup() should not find unconfigured repository")
	}

	// Repository keys are case-sensitive
	if _, ok := table.Lookup("Octocat/Hello-World"); ok {
		t.Error("Lookup() should be case-sensitive")
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}
