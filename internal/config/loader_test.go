package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
scan:
  extensions: [".py", ".md"]
  file_names: ["Makefile"]

output:
  dir: /var/lib/filescraper
  structure_file: index.json
  report_file: dump.txt

extraction:
  depth: 2

logging:
  level: debug
  format: json
  output: stdout
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{".py", ".md"}, cfg.Scan.Extensions)
	assert.Equal(t, []string{"Makefile"}, cfg.Scan.FileNames)
	assert.Equal(t, "/var/lib/filescraper", cfg.Output.Dir)
	assert.Equal(t, "index.json", cfg.Output.StructureFile)
	assert.Equal(t, "dump.txt", cfg.Output.ReportFile)
	assert.Equal(t, 2, cfg.Extraction.Depth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, DefaultExtensions, cfg.Scan.Extensions)
	assert.Equal(t, DefaultFileNames, cfg.Scan.FileNames)
	assert.Equal(t, "structure.json", cfg.Output.StructureFile)
}

func TestLoadRoundTripsYAML(t *testing.T) {
	want := DefaultConfig()
	want.Scan.Extensions = []string{".go"}
	want.Scan.FileNames = []string{"go.mod"}
	want.Output.Dir = "/out"
	want.Extraction.Depth = 1

	data, err := yaml.Marshal(want)
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "roundtrip.yaml")
	require.NoError(t, os.WriteFile(configPath, data, 0644))

	got, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadWithEnvVars(t *testing.T) {
	t.Setenv("TEST_SCRAPER_OUT", "/env/out")
	t.Setenv("TEST_SCRAPER_LOG", "/env/log.json")

	configPath := filepath.Join(t.TempDir(), "test-env.yaml")

	configContent := `
output:
  dir: ${TEST_SCRAPER_OUT}
logging:
  output: $TEST_SCRAPER_LOG
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/env/out", cfg.Output.Dir)
	assert.Equal(t, "/env/log.json", cfg.Logging.Output)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("extraction.depth", 1)
	v.Set("output.report_file", "custom.txt")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Extraction.Depth)
	assert.Equal(t, "custom.txt", cfg.Output.ReportFile)
	assert.Equal(t, "structure.json", cfg.Output.StructureFile)
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TEST_VAR", "test-value")

	tests := []struct {
		input    string
		expected string
	}{
		{"${TEST_VAR}", "test-value"},
		{"$TEST_VAR", "test-value"},
		{"prefix-${TEST_VAR}-suffix", "prefix-test-value-suffix"},
		{"${NONEXISTENT}", "${NONEXISTENT}"}, // Unset vars remain unchanged
		{"no-vars-here", "no-vars-here"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, expandEnvVar(tt.input), "expandEnvVar(%q)", tt.input)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("debug", "json", "/tmp/out", 2)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.Equal(t, 2, cfg.Extraction.Depth)
}

func TestApplyOverridesZeroValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Dir = "/keep"
	cfg.Extraction.Depth = 1

	cfg.ApplyOverrides("", "", "", 0)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "/keep", cfg.Output.Dir)
	assert.Equal(t, 1, cfg.Extraction.Depth)
}
