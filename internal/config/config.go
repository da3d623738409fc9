// Package config loads the optional docpost configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/docpost"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = ".docpost.yaml"

// Config holds every tunable of a run.
type Config struct {
	Root        string   `mapstructure:"root" json:"root"`
	TrimLines   int      `mapstructure:"trim_lines" json:"trim_lines"`
	HeadingDir  string   `mapstructure:"heading_dir" json:"heading_dir"`
	RemoveDirs  []string `mapstructure:"remove_dirs" json:"remove_dirs"`
	RemoveFiles []string `mapstructure:"remove_files" json:"remove_files"`
	LogLevel    string   `mapstructure:"log_level" json:"log_level"`
	LogFormat   string   `mapstructure:"log_format" json:"log_format"`
	MetricsFile string   `mapstructure:"metrics_file" json:"metrics_file"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Root:        docpost.DefaultRoot,
		TrimLines:   docpost.DefaultTrimLines,
		HeadingDir:  docpost.DefaultHeadingDir,
		RemoveDirs:  append([]string(nil), docpost.DefaultRemoveDirs...),
		RemoveFiles: append([]string(nil), docpost.DefaultRemoveFiles...),
		LogFormat:   "text",
	}
}

// Load reads the configuration at path on top of Default.
// An empty path means DefaultFile, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies the YAML document in data to cfg. Only keys present in the
// document change cfg. Unknown keys are an error.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	var file Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &file,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return err
	}

	for key := range raw {
		switch key {
		case "root":
			cfg.Root = file.Root
		case "trim_lines":
			cfg.TrimLines = file.TrimLines
		case "heading_dir":
			cfg.HeadingDir = file.HeadingDir
		case "remove_dirs":
			cfg.RemoveDirs = file.RemoveDirs
		case "remove_files":
			cfg.RemoveFiles = file.RemoveFiles
		case "log_level":
			cfg.LogLevel = file.LogLevel
		case "log_format":
			cfg.LogFormat = file.LogFormat
		case "metrics_file":
			cfg.MetricsFile = file.MetricsFile
		}
	}
	return nil
}

// Validate checks that cfg describes a runnable configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.TrimLines, validation.Min(0)),
		validation.Field(&c.HeadingDir, validation.By(singleSegment)),
		validation.Field(&c.RemoveDirs, validation.Each(validation.Required, validation.By(singleSegment))),
		validation.Field(&c.RemoveFiles, validation.Each(validation.Required, validation.By(singleSegment))),
		validation.Field(&c.LogLevel, validation.In("error", "warn", "warning", "info", "debug", "trace")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
	)
}

// singleSegment accepts plain names that live directly under the root.
func singleSegment(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return validation.NewError("docpost.config.single_segment", "must be a single path segment")
	}
	if strings.ContainsAny(s, "*?[]{}") {
		return validation.NewError("docpost.config.no_glob", "must not contain glob characters")
	}
	return nil
}
