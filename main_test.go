package main

import (
	"reflect"
	"testing"

	"github.com/atomicstack/marcador/internal/app"
	"github.com/atomicstack/marcador/internal/config"
	"github.com/atomicstack/marcador/internal/rofi"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DBPath:  "/tmp/bookmarks.db",
			Program: "rofi",
			Width:   rofi.Percentage(40),
			Verbose: true,
			Command: "add",
			Args:    []string{"https://go.dev", "Go"},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "/tmp/marcador.toml",
		Flags: map[string]string{
			"db":      "/tmp/bookmarks.db",
			"program": "rofi",
			"width":   "40%",
			"verbose": "true",
		},
		Args: []string{"-db", "/tmp/bookmarks.db", "add", "https://go.dev", "Go"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["db"] != "/tmp/bookmarks.db" {
		t.Fatalf("expected db flag, got %v", flagsValue["db"])
	}
	if flagsValue["width"] != "40%" {
		t.Fatalf("expected width 40%%, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["command"] != "add" {
		t.Fatalf("expected command add, got %v", payload["command"])
	}
	if payload["configFile"] != "/tmp/marcador.toml" {
		t.Fatalf("expected config file path, got %v", payload["configFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if !reflect.DeepEqual(cfgValue.App, cfg.App) {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
