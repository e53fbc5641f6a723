package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateScan()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateExtraction()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateScan() ValidationErrors {
	var errors ValidationErrors

	if len(c.Scan.Extensions) == 0 && len(c.Scan.FileNames) == 0 {
		errors = append(errors, ValidationError{
			Field:   "scan",
			Message: "at least one extension or file name must be configured",
		})
	}

	for i, ext := range c.Scan.Extensions {
		if ext == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("scan.extensions[%d]", i),
				Message: "extension cannot be empty",
			})
		}
	}

	for i, name := range c.Scan.FileNames {
		if name == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("scan.file_names[%d]", i),
				Message: "file name cannot be empty",
			})
		}
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	if c.Output.StructureFile == "" {
		errors = append(errors, ValidationError{
			Field:   "output.structure_file",
			Message: "structure_file is required",
		})
	}

	if c.Output.ReportFile == "" {
		errors = append(errors, ValidationError{
			Field:   "output.report_file",
			Message: "report_file is required",
		})
	}

	if c.Output.StructureFile != "" && c.Output.StructureFile == c.Output.ReportFile {
		errors = append(errors, ValidationError{
			Field:   "output.report_file",
			Message: "report_file must differ from structure_file",
		})
	}

	return errors
}

func (c *Config) validateExtraction() ValidationErrors {
	var errors ValidationErrors

	validDepths := map[int]bool{0: true, 1: true, 2: true}
	if !validDepths[c.Extraction.Depth] {
		errors = append(errors, ValidationError{
			Field:   "extraction.depth",
			Message: "depth must be 1 or 2 (0 prompts at runtime)",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
