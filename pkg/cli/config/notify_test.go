package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/herald-bot/herald/pkg/cli/config"
)

func writeRoutes(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routes.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write route table: %v", err)
	}
	return path
}

func TestNotifyLoadRoutes(t *testing.T) {
	path := writeRoutes(t, `
[routes]
"octocat/hello-world" = ["onebot:123456789", "slack:C0123ABCDEF"]
"octocat/spoon-knife" = ["telegram:-100987654"]
`)

	cfg := &config.Notify{RoutesPath: path}
	routes, err := cfg.LoadRoutes()
	gt.NoError(t, err)
	gt.Number(t, routes.Len()).Equal(2)

	dests, ok := routes.Lookup("octocat/hello-world")
	gt.True(t, ok)
	gt.Number(t, len(dests)).Equal(2)
	gt.Value(t, dests[0]).Equal("onebot:123456789")
	gt.Value(t, dests[1]).Equal("slack:C0123ABCDEF")

	if _, ok := routes.Lookup("octocat/unknown"); ok {
		t.Error("unknown repository should not resolve")
	}
}

func TestNotifyLoadRoutes_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Empty table",
			content: "",
		},
		{
			name: "No destinations for repository",
			content: `
[routes]
"octocat/hello-world" = []
`,
		},
		{
			name: "Malformed destination",
			content: `
[routes]
"octocat/hello-world" = ["no-platform-separator"]
`,
		},
		{
			name: "Empty platform",
			content: `
[routes]
"octocat/hello-world" = [":123456"]
`,
		},
		{
			name: "Not TOML",
			content: `{"routes": {}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Notify{RoutesPath: writeRoutes(t, tt.content)}
			_, err := cfg.LoadRoutes()
			gt.Error(t, err)
		})
	}
}

func TestNotifyLoadRoutes_MissingFile(t *testing.T) {
	cfg := &config.Notify{RoutesPath: filepath.Join(t.TempDir(), "absent.toml")}
	_, err := cfg.LoadRoutes()
	gt.Error(t, err)
}

func TestNotifyValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Notify
		wantErr bool
	}{
		{
			name: "Defaults are valid",
			cfg:  config.Notify{TruncateLength: 200, StarThreshold: 1},
		},
		{
			name:    "Zero truncate length",
			cfg:     config.Notify{TruncateLength: 0, StarThreshold: 1},
			wantErr: true,
		},
		{
			name:    "Negative star threshold",
			cfg:     config.Notify{TruncateLength: 200, StarThreshold: -5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
