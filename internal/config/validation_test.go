package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name: "empty allow-lists",
			mutate: func(c *Config) {
				c.Scan.Extensions = nil
				c.Scan.FileNames = nil
			},
			wantField: "scan",
		},
		{
			name:      "blank extension",
			mutate:    func(c *Config) { c.Scan.Extensions = []string{".py", ""} },
			wantField: "scan.extensions[1]",
		},
		{
			name:      "blank file name",
			mutate:    func(c *Config) { c.Scan.FileNames = []string{""} },
			wantField: "scan.file_names[0]",
		},
		{
			name:      "missing structure file",
			mutate:    func(c *Config) { c.Output.StructureFile = "" },
			wantField: "output.structure_file",
		},
		{
			name:      "missing report file",
			mutate:    func(c *Config) { c.Output.ReportFile = "" },
			wantField: "output.report_file",
		},
		{
			name: "report overwrites structure",
			mutate: func(c *Config) {
				c.Output.StructureFile = "same.txt"
				c.Output.ReportFile = "same.txt"
			},
			wantField: "output.report_file",
		},
		{
			name:      "depth out of range",
			mutate:    func(c *Config) { c.Extraction.Depth = 3 },
			wantField: "extraction.depth",
		},
		{
			name:      "negative depth",
			mutate:    func(c *Config) { c.Extraction.Depth = -1 },
			wantField: "extraction.depth",
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
		{
			name:      "invalid log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			wantField: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			found := false
			for _, e := range verrs {
				if e.Field == tt.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected error for field %q, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestOnlyExtensionsIsEnough(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.FileNames = nil

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.StructureFile = ""
	cfg.Extraction.Depth = 7
	cfg.Logging.Format = "yaml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "validation failed") {
		t.Errorf("expected 'validation failed' header, got: %v", errStr)
	}
	for _, field := range []string{"output.structure_file", "extraction.depth", "logging.format"} {
		if !strings.Contains(errStr, field) {
			t.Errorf("expected error mentioning %s, got: %v", field, errStr)
		}
	}
}

func TestValidationErrorsEmpty(t *testing.T) {
	var e ValidationErrors
	if e.Error() != "" {
		t.Errorf("expected empty string for no errors, got %q", e.Error())
	}
}
