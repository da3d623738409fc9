package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/docpost/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docpost.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "docs", cfg.Root)
	assert.Equal(t, 2, cfg.TrimLines)
	assert.Equal(t, "classes", cfg.HeadingDir)
	assert.Equal(t, []string{"modules"}, cfg.RemoveDirs)
	assert.Equal(t, []string{"README.md"}, cfg.RemoveFiles)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("overrides only present keys", func(t *testing.T) {
		path := writeConfig(t, "root: site/docs\ntrim_lines: 3\nremove_dirs: []\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "site/docs", cfg.Root)
		assert.Equal(t, 3, cfg.TrimLines)
		assert.Empty(t, cfg.RemoveDirs)
		assert.Equal(t, "classes", cfg.HeadingDir)
		assert.Equal(t, []string{"README.md"}, cfg.RemoveFiles)
	})

	t.Run("weakly typed values", func(t *testing.T) {
		path := writeConfig(t, "trim_lines: \"4\"\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.TrimLines)
	})

	t.Run("lists", func(t *testing.T) {
		path := writeConfig(t, "remove_files:\n  - README.md\n  - CHANGELOG.md\nheading_dir: interfaces\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md", "CHANGELOG.md"}, cfg.RemoveFiles)
		assert.Equal(t, "interfaces", cfg.HeadingDir)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		path := writeConfig(t, "trim: 3\n")

		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trim")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "root: [unclosed\n")

		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("default file is picked up", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("root: out\n"), 0o644))
		t.Chdir(dir)

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, "out", cfg.Root)
	})
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(*config.Config)
		wantErr string
	}{
		"defaults": {
			mutate: func(*config.Config) {},
		},
		"heading pass disabled": {
			mutate: func(c *config.Config) { c.HeadingDir = "" },
		},
		"zero trim": {
			mutate: func(c *config.Config) { c.TrimLines = 0 },
		},
		"empty root": {
			mutate:  func(c *config.Config) { c.Root = "" },
			wantErr: "root",
		},
		"negative trim": {
			mutate:  func(c *config.Config) { c.TrimLines = -1 },
			wantErr: "trim_lines",
		},
		"nested removal target": {
			mutate:  func(c *config.Config) { c.RemoveDirs = []string{"a/b"} },
			wantErr: "remove_dirs",
		},
		"parent removal target": {
			mutate:  func(c *config.Config) { c.RemoveFiles = []string{".."} },
			wantErr: "remove_files",
		},
		"glob heading dir": {
			mutate:  func(c *config.Config) { c.HeadingDir = "class*" },
			wantErr: "heading_dir",
		},
		"unknown log format": {
			mutate:  func(c *config.Config) { c.LogFormat = "xml" },
			wantErr: "log_format",
		},
		"unknown log level": {
			mutate:  func(c *config.Config) { c.LogLevel = "loud" },
			wantErr: "log_level",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
