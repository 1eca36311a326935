package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/marcador/internal/app"
	"github.com/atomicstack/marcador/internal/rofi"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envConfig  = "MARCADOR_CONFIG"
	envDB      = "MARCADOR_DB"
	envProgram = "MARCADOR_PROGRAM"
	envBrowser = "MARCADOR_BROWSER"
	envTheme   = "MARCADOR_THEME"
	envWidth   = "MARCADOR_WIDTH"
	envVerbose = "MARCADOR_VERBOSE"
	envTrace   = "MARCADOR_TRACE"
	envLogFile = "MARCADOR_LOG_FILE"
)

// Load parses configuration from the config file, environment variables and
// CLI arguments, in increasing order of precedence.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := configFilePath(args, env)
	file, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("marcador", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a TOML or YAML configuration file")
	db := fs.String("db", envOrDefault(env, envDB, orDefault(file.DB, defaultDBPath(env))), "path to the bookmark database")
	program := fs.String("program", envOrDefault(env, envProgram, orDefault(file.Program, rofi.DefaultProgram)), "dmenu compatible selection program")
	browser := fs.String("browser", envOrDefault(env, envBrowser, file.Browser), "command used to open bookmarks (default xdg-open)")
	theme := fs.String("theme", envOrDefault(env, envTheme, file.Theme), "rofi theme name")
	width := fs.String("width", envOrDefault(env, envWidth, file.Width), "window width, e.g. 40% or 800px")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, boolOr(file.Verbose, false)), "print success messages for commands")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	parsedWidth, err := ParseWidth(*width)
	if err != nil {
		return Config{}, err
	}

	command := "rofi"
	rest := fs.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	cfg := Config{
		App: app.Config{
			DBPath:  expandPath(*db, env),
			Program: *program,
			Browser: *browser,
			Theme:   *theme,
			Width:   parsedWidth,
			Verbose: *verbose,
			Command: command,
			Args:    append([]string(nil), rest...),
		},
		Logging: Logging{
			FilePath: expandPath(*logFile, env),
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		File: path,
		Flags: map[string]string{
			"config":  path,
			"db":      *db,
			"program": *program,
			"browser": *browser,
			"theme":   *theme,
			"width":   *width,
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// ParseWidth reads "N%" as a percentage and "N" or "Npx" as pixels. An empty
// value means no width override.
func ParseWidth(raw string) (rofi.Width, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return rofi.NoWidth, nil
	}
	unit := rofi.Pixels
	number := strings.TrimSuffix(raw, "px")
	if strings.HasSuffix(raw, "%") {
		unit = rofi.Percentage
		number = strings.TrimSuffix(raw, "%")
	}
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return rofi.NoWidth, fmt.Errorf("invalid width %q: %w", raw, err)
	}
	return unit(n), nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// configHome resolves $XDG_CONFIG_HOME with the usual ~/.config fallback.
func configHome(env map[string]string) string {
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		return dir
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}

func defaultDBPath(env map[string]string) string {
	return filepath.Join(configHome(env), "marcador", "marcador.db")
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string, env map[string]string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home := env["HOME"]
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, path[1:])
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the command line and the options that can only be
// checked once every source has been merged.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DBPath) == "" {
		return errors.New("a bookmark database path is required (-db or " + envDB + ")")
	}
	if _, err := rofi.New(nil).Width(cfg.App.Width); err != nil {
		return err
	}
	args := cfg.App.Args
	switch cfg.App.Command {
	case "rofi", "list":
		if len(args) != 0 {
			return fmt.Errorf("%s takes no arguments (got %d)", cfg.App.Command, len(args))
		}
	case "add":
		if len(args) < 2 {
			return errors.New("usage: add URL DESCRIPTION [TAG...]")
		}
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: delete ID")
		}
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid bookmark id %q", args[0])
		}
	default:
		return fmt.Errorf("unknown command %q (want rofi, add, list or delete)", cfg.App.Command)
	}
	return nil
}
