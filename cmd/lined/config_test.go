package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lined.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
prompt: "$ "
history_file: /tmp/hist.db
stifle: 100
max_line_length: 256
mask: "*"
log_file: /tmp/lined.log
`)
	cfg := defaultConfig()
	if err := cfg.loadFile(path); err != nil {
		t.Fatal(err)
	}
	want := Config{
		Prompt:        "$ ",
		HistoryFile:   "/tmp/hist.db",
		Stifle:        100,
		MaxLineLength: 256,
		Mask:          "*",
		LogFile:       "/tmp/lined.log",
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "stifle: 10\n")
	cfg := defaultConfig()
	if err := cfg.loadFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "> " || cfg.Stifle != 10 {
		t.Errorf("got %+v, want default prompt and stifle 10", cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.loadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("loading an absent file succeeded")
	}
	if err := cfg.loadFile(writeConfig(t, "stifle: -1\n")); err == nil {
		t.Errorf("negative stifle accepted")
	}
	if err := cfg.loadFile(writeConfig(t, "prompt: [\n")); err == nil {
		t.Errorf("malformed YAML accepted")
	}
}
