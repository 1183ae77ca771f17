package main

import (
	"testing"

	"yaedit/internal/config"
)

func TestParseFlags(t *testing.T) {
	flags, err := parseFlags([]string{
		"yaedit",
		"--action", "rephrase",
		"-i", "in.md",
		"-o", "out.md",
		"--max-retries", "5",
		"--chunk-length", "4000",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseFlags() failed: %v", err)
	}

	if flags.action != "rephrase" {
		t.Errorf("action = %q, want %q", flags.action, "rephrase")
	}
	if flags.input != "in.md" || flags.output != "out.md" {
		t.Errorf("io = (%q, %q), want (in.md, out.md)", flags.input, flags.output)
	}
	if flags.maxRetries != 5 || flags.chunkLength != 4000 {
		t.Errorf("limits = (%d, %d), want (5, 4000)", flags.maxRetries, flags.chunkLength)
	}
	if !flags.verbose {
		t.Error("verbose not set")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	flags, err := parseFlags([]string{"yaedit"})
	if err != nil {
		t.Fatalf("parseFlags() failed: %v", err)
	}
	if flags.action != "" || flags.config != "" || flags.input != "" || flags.output != "" {
		t.Errorf("string flags not empty by default: %+v", flags)
	}
	if flags.maxRetries != 0 || flags.chunkLength != 0 {
		t.Errorf("numeric flags not zero by default: %+v", flags)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	if _, err := parseFlags([]string{"yaedit", "--bogus"}); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}

func TestMergeConfig(t *testing.T) {
	tests := []struct {
		name  string
		flags cliFlags
		want  config.Config
	}{
		{
			name:  "no flags keeps config",
			flags: cliFlags{},
			want:  config.Config{Action: "correct", MaxRetries: 3, ChunkLength: 10000},
		},
		{
			name:  "flags win over config",
			flags: cliFlags{action: "formal", maxRetries: 7, chunkLength: 2000},
			want:  config.Config{Action: "formal", MaxRetries: 7, ChunkLength: 2000},
		},
		{
			name:  "partial override",
			flags: cliFlags{action: "improve"},
			want:  config.Config{Action: "improve", MaxRetries: 3, ChunkLength: 10000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeConfig(config.Default(), &tt.flags)
			if *got != tt.want {
				t.Errorf("mergeConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
