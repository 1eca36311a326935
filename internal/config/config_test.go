package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/atomicstack/marcador/internal/rofi"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// isolatedEnv keeps the lookup of the default config file inside a temp dir.
func isolatedEnv(t *testing.T, extra ...string) []string {
	t.Helper()
	return append([]string{"HOME=" + t.TempDir()}, extra...)
}

func TestLoadArgsDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadArgs(nil, []string{"HOME=" + home})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Command != "rofi" || len(cfg.App.Args) != 0 {
		t.Fatalf("expected rofi command, got %q %q", cfg.App.Command, cfg.App.Args)
	}
	if want := filepath.Join(home, ".config", "marcador", "marcador.db"); cfg.App.DBPath != want {
		t.Fatalf("expected db %q, got %q", want, cfg.App.DBPath)
	}
	if cfg.App.Program != rofi.DefaultProgram {
		t.Fatalf("expected default program, got %q", cfg.App.Program)
	}
	if cfg.App.Width != rofi.NoWidth {
		t.Fatalf("expected no width, got %s", cfg.App.Width)
	}
	if cfg.File != filepath.Join(home, ".config", "marcador", "marcador.toml") {
		t.Fatalf("unexpected config file path %q", cfg.File)
	}
}

func TestLoadArgsCommand(t *testing.T) {
	cfg, err := LoadArgs([]string{"-db", "/tmp/b.db", "add", "https://go.dev", "Go", "lang"}, isolatedEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Command != "add" {
		t.Fatalf("expected add, got %q", cfg.App.Command)
	}
	if !reflect.DeepEqual(cfg.App.Args, []string{"https://go.dev", "Go", "lang"}) {
		t.Fatalf("unexpected args %q", cfg.App.Args)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, "marcador.toml", `
db = "/from/file.db"
program = "file-rofi"
browser = "file-browser"
theme = "file-theme"
width = "40%"
trace = true
`)
	env := []string{
		"HOME=" + t.TempDir(),
		"MARCADOR_CONFIG=" + path,
		"MARCADOR_PROGRAM=env-rofi",
		"MARCADOR_BROWSER=env-browser",
	}
	cfg, err := LoadArgs([]string{"-browser", "flag-browser"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != "/from/file.db" {
		t.Fatalf("expected db from file, got %q", cfg.App.DBPath)
	}
	if cfg.App.Program != "env-rofi" {
		t.Fatalf("expected env to override file, got %q", cfg.App.Program)
	}
	if cfg.App.Browser != "flag-browser" {
		t.Fatalf("expected flag to override env, got %q", cfg.App.Browser)
	}
	if cfg.App.Theme != "file-theme" || cfg.App.Width != rofi.Percentage(40) || !cfg.Logging.Trace {
		t.Fatalf("expected theme, width and trace from file, got %+v %+v", cfg.App, cfg.Logging)
	}
	if cfg.File != path {
		t.Fatalf("expected config path %q, got %q", path, cfg.File)
	}
}

func TestYAMLConfigFile(t *testing.T) {
	path := writeConfig(t, "marcador.yaml", "db: /from/yaml.db\nwidth: 800px\nverbose: true\n")
	cfg, err := LoadArgs([]string{"--config=" + path, "list"}, isolatedEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != "/from/yaml.db" || cfg.App.Width != rofi.Pixels(800) || !cfg.App.Verbose {
		t.Fatalf("unexpected config %+v", cfg.App)
	}
}

func TestExplicitMissingConfigFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := LoadArgs([]string{"-config", missing}, isolatedEnv(t)); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestMalformedConfigFails(t *testing.T) {
	path := writeConfig(t, "marcador.toml", "db = [unterminated")
	if _, err := LoadArgs(nil, isolatedEnv(t, "MARCADOR_CONFIG="+path)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestEnvBoolFallsBackOnGarbage(t *testing.T) {
	cfg, err := LoadArgs(nil, isolatedEnv(t, "MARCADOR_TRACE=maybe", "MARCADOR_VERBOSE=1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace to stay disabled")
	}
	if !cfg.Features.Verbose {
		t.Fatalf("expected verbose enabled")
	}
}

func TestTildeExpansion(t *testing.T) {
	cfg, err := LoadArgs([]string{"-db", "~/bm.db", "-log-file", "~/logs/m.log"}, []string{"HOME=/home/u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != "/home/u/bm.db" || cfg.Logging.FilePath != "/home/u/logs/m.log" {
		t.Fatalf("unexpected paths %q %q", cfg.App.DBPath, cfg.Logging.FilePath)
	}
}

func TestParseWidth(t *testing.T) {
	cases := []struct {
		raw  string
		want rofi.Width
		ok   bool
	}{
		{"", rofi.NoWidth, true},
		{"40%", rofi.Percentage(40), true},
		{"800px", rofi.Pixels(800), true},
		{"800", rofi.Pixels(800), true},
		{"wide", rofi.NoWidth, false},
	}
	for _, tc := range cases {
		got, err := ParseWidth(tc.raw)
		if tc.ok != (err == nil) {
			t.Fatalf("%q: unexpected error state %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.raw, tc.want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	base := func(command string, args ...string) Config {
		var cfg Config
		cfg.App.DBPath = "/tmp/m.db"
		cfg.App.Command = command
		cfg.App.Args = args
		return cfg
	}
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"rofi", base("rofi"), true},
		{"rofi with args", base("rofi", "x"), false},
		{"list", base("list"), true},
		{"add", base("add", "u", "d"), true},
		{"add with tags", base("add", "u", "d", "t1", "t2"), true},
		{"add missing description", base("add", "u"), false},
		{"delete", base("delete", "3"), true},
		{"delete non numeric", base("delete", "x"), false},
		{"unknown", base("edit", "3"), false},
		{"no db", func() Config { c := base("list"); c.App.DBPath = ""; return c }(), false},
	}
	for _, tc := range cases {
		if err := Validate(tc.cfg); tc.ok != (err == nil) {
			t.Fatalf("%s: unexpected result %v", tc.name, err)
		}
	}
}

func TestValidateRejectsBadWidth(t *testing.T) {
	cfg, err := LoadArgs([]string{"-db", "/tmp/m.db", "-width", "101%"}, isolatedEnv(t))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := Validate(cfg); !errors.Is(err, rofi.ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
}

func TestSelectorLoggingReadsFileAndEnv(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "marcador.toml")
	if err := os.WriteFile(path, []byte("trace = true\nlog_file = \"~/menu.log\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	env := []string{"HOME=" + home, "MARCADOR_CONFIG=" + path}
	logCfg, err := SelectorLogging(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logCfg.Trace || logCfg.FilePath != filepath.Join(home, "menu.log") {
		t.Fatalf("unexpected logging config %+v", logCfg)
	}
	logCfg, err = SelectorLogging(append(env, "MARCADOR_TRACE=false", "MARCADOR_LOG_FILE=/tmp/x.log"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logCfg.Trace || logCfg.FilePath != "/tmp/x.log" {
		t.Fatalf("expected env to override the file, got %+v", logCfg)
	}
}
