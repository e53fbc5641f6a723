// Package scraper runs the scan, index, extract and report stages in sequence.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/afero"

	"github.com/dbsmedya/filescraper/internal/config"
	"github.com/dbsmedya/filescraper/internal/content"
	"github.com/dbsmedya/filescraper/internal/declarations"
	"github.com/dbsmedya/filescraper/internal/extraction"
	"github.com/dbsmedya/filescraper/internal/logger"
	"github.com/dbsmedya/filescraper/internal/prompt"
	"github.com/dbsmedya/filescraper/internal/report"
	"github.com/dbsmedya/filescraper/internal/structure"
)

// ErrNoDirectorySelected is returned when the operator cancels the folder prompt.
var ErrNoDirectorySelected = errors.New("no directory selected")

const (
	directoryTitle = "Select the root folder of the project"
	depthLabel     = "Enter the depth level (1 or 2): "
)

// Result contains statistics and status of one run.
type Result struct {
	RootDir       string
	StructurePath string
	ReportPath    string
	Depth         extraction.Depth
	Directories   int // entries in the structure map
	Files         int // important files listed in the structure map
	Stats         extraction.Stats
	StartedAt     time.Time
	CompletedAt   time.Time
	Duration      time.Duration
}

// Scraper coordinates one run. It holds no state between runs.
type Scraper struct {
	config   *config.Config
	prompter prompt.Prompter
	logger   *logger.Logger
	console  console

	scanner *structure.Scanner
	store   *structure.Store
	driver  *extraction.Driver
	report  *report.Writer
}

// New creates a Scraper. All file access goes through fs; status lines go to out.
func New(cfg *config.Config, fs afero.Fs, prompter prompt.Prompter, log *logger.Logger, out io.Writer) (*Scraper, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if fs == nil {
		return nil, fmt.Errorf("filesystem is nil")
	}
	if prompter == nil {
		return nil, fmt.Errorf("prompter is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	if out == nil {
		out = io.Discard
	}

	predicate := structure.NewPredicate(cfg.Scan.Extensions, cfg.Scan.FileNames)

	return &Scraper{
		config:   cfg,
		prompter: prompter,
		logger:   log,
		console:  console{out: out},
		scanner:  structure.NewScanner(fs, predicate, log.WithStage("scan")),
		store:    structure.NewStore(fs),
		driver:   extraction.NewDriver(content.NewReader(fs), declarations.NewExtractor(), log.WithStage("extract")),
		report:   report.NewWriter(fs),
	}, nil
}

// Run scans a chosen directory, saves the structure index, then extracts the
// important files into the report. Nothing is written if no directory is chosen.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		StartedAt:     time.Now(),
		StructurePath: s.config.StructurePath(),
		ReportPath:    s.config.ReportPath(),
	}

	s.console.heading("🔍 Important File Scraper")
	s.console.line("Select the root folder of the project to be scanned.")

	root, err := s.chooseRoot(ctx)
	if err != nil {
		return nil, err
	}
	result.RootDir = root

	s.console.line("🔎 Generating structure for directory: %s", root)
	s.logger.WithStage("scan").WithRoot(root).Info("Scanning directory")

	m, err := s.scanner.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if err := s.store.Save(m, result.StructurePath); err != nil {
		return nil, err
	}
	result.Directories = m.Len()
	result.Files = m.FileCount()

	s.logger.WithStage("index").Infow("Structure index saved",
		"path", result.StructurePath,
		"directories", result.Directories,
		"files", result.Files,
	)
	s.console.success("✅ Structure file created: %s", result.StructurePath)
	s.console.line("All done! The important files have been found. 😄")

	if err := s.extract(ctx, m, root, result); err != nil {
		return nil, err
	}
	return s.finish(result), nil
}

// RunFromIndex loads a previously saved structure index instead of scanning.
// A missing index ends the run before anything is prompted or written.
func (s *Scraper) RunFromIndex(ctx context.Context) (*Result, error) {
	result := &Result{
		StartedAt:     time.Now(),
		StructurePath: s.config.StructurePath(),
		ReportPath:    s.config.ReportPath(),
	}

	s.console.heading("🔍 Important File Scraper")

	m, err := s.store.Load(result.StructurePath)
	if err != nil {
		if errors.Is(err, structure.ErrMissingIndex) {
			s.console.failure("❌ Structure file not found: %s", result.StructurePath)
			s.console.line("Run a scan first to create it.")
		}
		return nil, err
	}
	result.Directories = m.Len()
	result.Files = m.FileCount()

	s.logger.WithStage("index").Infow("Structure index loaded",
		"path", result.StructurePath,
		"directories", result.Directories,
		"files", result.Files,
	)
	s.console.success("✅ Structure file loaded: %s", result.StructurePath)
	s.console.line("Select the root folder the structure file was generated from.")

	root, err := s.chooseRoot(ctx)
	if err != nil {
		return nil, err
	}
	result.RootDir = root

	if err := s.extract(ctx, m, root, result); err != nil {
		return nil, err
	}
	return s.finish(result), nil
}

// chooseRoot asks for the project root and makes it absolute.
func (s *Scraper) chooseRoot(ctx context.Context) (string, error) {
	dir, err := s.prompter.ChooseDirectory(ctx, directoryTitle)
	if err != nil {
		return "", err
	}
	if dir == "" {
		s.console.failure("❌ No folder selected. Exiting.")
		return "", ErrNoDirectorySelected
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return abs, nil
}

// extract resolves the depth level, builds the records and writes the report.
func (s *Scraper) extract(ctx context.Context, m *structure.Map, root string, result *Result) error {
	depth, err := s.depth(ctx)
	if err != nil {
		s.console.failure("❌ %v", err)
		return err
	}
	result.Depth = depth

	log := s.logger.WithStage("extract").WithRoot(root).WithDepth(int(depth))
	log.Info("Extracting important files")

	records, stats := s.driver.Extract(ctx, m, root, depth)
	result.Stats = stats

	if err := s.report.Write(records, result.ReportPath); err != nil {
		return err
	}

	log.Infow("Report written",
		"path", result.ReportPath,
		"records", stats.Read,
		"skipped", stats.Skipped(),
	)
	s.console.success("✅ Extracted data saved to: %s", result.ReportPath)
	return nil
}

// depth returns the configured depth, prompting when none is configured.
func (s *Scraper) depth(ctx context.Context) (extraction.Depth, error) {
	n := s.config.Extraction.Depth
	if n == 0 {
		var err error
		n, err = s.prompter.ReadInteger(ctx, depthLabel)
		if err != nil {
			return 0, fmt.Errorf("failed to read depth level: %w", err)
		}
	}
	return extraction.ParseDepth(n)
}

func (s *Scraper) finish(result *Result) *Result {
	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(result.StartedAt)

	rows := []summaryRow{
		{"📁 Directories indexed", strconv.Itoa(result.Directories)},
		{"📄 Important files", strconv.Itoa(result.Files)},
		{"📝 Records written", strconv.Itoa(result.Stats.Read)},
		{"🚫 Skipped", strconv.Itoa(result.Stats.Skipped())},
		{"🔢 Depth", strconv.Itoa(int(result.Depth))},
	}
	if result.Depth.WantsDeclarations() {
		rows = append(rows, summaryRow{"🧩 Unparsed as Python", strconv.Itoa(result.Stats.Unparseable)})
	}
	rows = append(rows, summaryRow{"⏱ Duration", result.Duration.Round(time.Millisecond).String()})
	s.console.summary("Summary", rows)
	return result
}
