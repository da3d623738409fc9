package cli

import (
	"github.com/spf13/pflag"

	"github.com/aretw0/docpost/internal/config"
)

// Flag names shared by the commands.
const (
	FlagDir         = "dir"
	FlagConfig      = "config"
	FlagTrimLines   = "trim-lines"
	FlagHeadingDir  = "heading-dir"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagMetricsFile = "metrics-file"
)

// LoadConfig reads the config file named by --config (or the default file)
// and overlays every flag the user set explicitly.
func LoadConfig(flags *pflag.FlagSet) (config.Config, error) {
	path, err := flags.GetString(FlagConfig)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if err := applyFlags(&cfg, flags); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	var err error
	if flags.Changed(FlagDir) {
		if cfg.Root, err = flags.GetString(FlagDir); err != nil {
			return err
		}
	}
	if flags.Changed(FlagTrimLines) {
		if cfg.TrimLines, err = flags.GetInt(FlagTrimLines); err != nil {
			return err
		}
	}
	if flags.Changed(FlagHeadingDir) {
		if cfg.HeadingDir, err = flags.GetString(FlagHeadingDir); err != nil {
			return err
		}
	}
	if flags.Changed(FlagLogLevel) {
		if cfg.LogLevel, err = flags.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if flags.Changed(FlagLogFormat) {
		if cfg.LogFormat, err = flags.GetString(FlagLogFormat); err != nil {
			return err
		}
	}
	if flags.Changed(FlagMetricsFile) {
		if cfg.MetricsFile, err = flags.GetString(FlagMetricsFile); err != nil {
			return err
		}
	}
	return nil
}
