package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration. Every field is optional.
type File struct {
	DB      string `toml:"db" yaml:"db"`
	Program string `toml:"program" yaml:"program"`
	Browser string `toml:"browser" yaml:"browser"`
	Theme   string `toml:"theme" yaml:"theme"`
	Width   string `toml:"width" yaml:"width"`
	LogFile string `toml:"log_file" yaml:"log_file"`
	Trace   *bool  `toml:"trace" yaml:"trace"`
	Verbose *bool  `toml:"verbose" yaml:"verbose"`
}

// DefaultFilePath is where the configuration is looked up when neither
// -config nor MARCADOR_CONFIG is set.
func DefaultFilePath() string {
	return defaultFilePath(parseEnv(os.Environ()))
}

func defaultFilePath(env map[string]string) string {
	return filepath.Join(configHome(env), "marcador", "marcador.toml")
}

// configFilePath finds the configuration file before flags are parsed,
// since the file provides the flag defaults.
func configFilePath(args []string, env map[string]string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	if path, ok := env[envConfig]; ok && strings.TrimSpace(path) != "" {
		return path, true
	}
	return defaultFilePath(env), false
}

// readFile decodes the file at path by extension. A missing file is only an
// error when it was asked for explicitly.
func readFile(path string, explicit bool) (File, error) {
	var file File
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return file, nil
		}
		return file, fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		_, err = toml.Decode(string(data), &file)
	}
	if err != nil {
		return file, fmt.Errorf("decode config %s: %w", path, err)
	}
	return file, nil
}
