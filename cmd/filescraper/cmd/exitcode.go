package cmd

import (
	"errors"
	"io"

	"github.com/dbsmedya/filescraper/internal/extraction"
	"github.com/dbsmedya/filescraper/internal/prompt"
	"github.com/dbsmedya/filescraper/internal/scraper"
	"github.com/dbsmedya/filescraper/internal/structure"
)

// Process exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitNoDirectory  = 2
	exitMissingIndex = 3
	exitInvalidInput = 4
)

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, scraper.ErrNoDirectorySelected):
		return exitNoDirectory
	case errors.Is(err, structure.ErrMissingIndex):
		return exitMissingIndex
	case errors.Is(err, prompt.ErrInvalidInteger),
		errors.Is(err, extraction.ErrInvalidDepth),
		errors.Is(err, io.ErrUnexpectedEOF):
		return exitInvalidInput
	default:
		return exitFailure
	}
}
