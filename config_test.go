package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		missing  bool
		wantErr  bool
		expected Settings
	}{
		{
			name:     "missing file returns defaults",
			missing:  true,
			expected: Settings{},
		},
		{
			name:    "all keys",
			content: "api_host: github.example.com\noutput: /tmp/result.json\n",
			expected: Settings{
				APIHost: "github.example.com",
				Output:  "/tmp/result.json",
			},
		},
		{
			name:     "partial keys",
			content:  "output: custom.json\n",
			expected: Settings{Output: "custom.json"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: Settings{},
		},
		{
			name:    "invalid yaml",
			content: "api_host: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if !tt.missing {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			settings, err := loadSettingsFile(path)

			if tt.wantErr {
				if err == nil {
					t.Error("loadSettingsFile() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("loadSettingsFile() unexpected error: %v", err)
			}
			if settings != tt.expected {
				t.Errorf("settings = %+v, want %+v", settings, tt.expected)
			}
		})
	}
}
