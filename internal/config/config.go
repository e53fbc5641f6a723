// Package config provides configuration structures and loading for filescraper.
package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete application configuration.
type Config struct {
	Scan       ScanConfig       `yaml:"scan" mapstructure:"scan"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Extraction ExtractionConfig `yaml:"extraction" mapstructure:"extraction"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig holds the importance predicate used by the directory scanner.
type ScanConfig struct {
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // matched as filename suffixes
	FileNames  []string `yaml:"file_names" mapstructure:"file_names"` // matched exactly
}

// OutputConfig locates the structure index and the report.
type OutputConfig struct {
	Dir           string `yaml:"dir" mapstructure:"dir"` // empty means the executable's directory
	StructureFile string `yaml:"structure_file" mapstructure:"structure_file"`
	ReportFile    string `yaml:"report_file" mapstructure:"report_file"`
}

// ExtractionConfig represents extraction settings.
type ExtractionConfig struct {
	Depth int `yaml:"depth" mapstructure:"depth"` // 0 prompts, 1 content only, 2 adds declarations
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultExtensions is the extension allow-list used when no configuration overrides it.
var DefaultExtensions = []string{
	".py", ".js", ".html", ".css", ".json", ".yml", ".yaml", ".csv", ".xlsx",
	".txt", ".md", ".rst", ".ini", ".cfg", ".toml", ".xml", ".sql",
	".sh", ".bat", ".cmd", ".ps1", ".rb", ".java", ".cpp", ".c", ".h",
	".cs", ".ts", ".dart", ".kt", ".swift", ".go", ".php", ".pl", ".scala",
	".r", ".lua", ".perl", ".lisp", ".hs", ".clj", ".erl", ".ex",
	".vim", ".emacs", ".org", ".tex", ".bib", ".cls", ".sty",
	".vim", ".zsh", ".bash", ".fish", ".gitignore", ".dockerignore",
	".env", ".env.example", ".envrc", ".editorconfig", ".eslintrc",
	".flake8", ".pylintrc", ".pypirc", ".babelrc", ".jshintrc",
	".npmignore", ".htaccess", ".conf", ".cfg", ".ini", ".properties",
	".gradle", ".m", ".mm", ".proto", ".rs", ".graphql", ".sol",
	".asm", ".wat", ".wasm",
}

// DefaultFileNames is the exact-filename allow-list used when no configuration overrides it.
var DefaultFileNames = []string{
	"README", "LICENSE", "CONTRIBUTING", "CHANGELOG", "MANIFEST",
	"setup.py", "requirements.txt", "pyproject.toml", "poetry.lock",
	"package.json", "package-lock.json", "yarn.lock", "Gemfile", "Gemfile.lock",
	"Cargo.toml", "Cargo.lock", "build.gradle", "pom.xml", "build.sbt",
	"project.clj", "project.scm", "Makefile", "Dockerfile", "docker-compose.yml",
	".gitignore", ".gitattributes", ".gitmodules", ".npmrc", ".yarnrc",
	"jest.config.js", "tsconfig.json", "tslint.json", ".babelrc", ".eslintrc",
	".prettierrc", ".stylelintrc", "webpack.config.js", "gulpfile.js",
	"gruntfile.js", "netlify.toml", "vercel.json", "now.json", ".travis.yml",
	".circleci", "appveyor.yml", "Jenkinsfile", "Procfile", "Pipfile", "Pipfile.lock",
	"config.yml", "mkdocs.yml", "spec.yml", "swagger.yml", "serverless.yml",
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions: append([]string(nil), DefaultExtensions...),
			FileNames:  append([]string(nil), DefaultFileNames...),
		},
		Output: OutputConfig{
			StructureFile: "structure.json",
			ReportFile:    "extracted_data.txt",
		},
		Extraction: ExtractionConfig{
			Depth: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// StructurePath returns the location of the structure index.
func (c *Config) StructurePath() string {
	return c.Output.resolve(c.Output.StructureFile)
}

// ReportPath returns the location of the extraction report.
func (c *Config) ReportPath() string {
	return c.Output.resolve(c.Output.ReportFile)
}

// resolve joins name onto the output directory unless name is already absolute.
func (o OutputConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	dir := o.Dir
	if dir == "" {
		dir = ProgramDir()
	}
	return filepath.Join(dir, name)
}

// ProgramDir returns the directory holding the running executable, falling back
// to the working directory when it cannot be determined.
func ProgramDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, outputDir string, depth int) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if outputDir != "" {
		c.Output.Dir = outputDir
	}
	if depth != 0 {
		c.Extraction.Depth = depth
	}
}
