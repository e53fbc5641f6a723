package cmd

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/filescraper/internal/extraction"
	"github.com/dbsmedya/filescraper/internal/prompt"
	"github.com/dbsmedya/filescraper/internal/scraper"
	"github.com/dbsmedya/filescraper/internal/structure"
)

func TestExitCode(t *testing.T) {
	_, parseErr := prompt.ParseInteger("abc")
	_, depthErr := extraction.ParseDepth(5)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"no directory", scraper.ErrNoDirectorySelected, exitNoDirectory},
		{"missing index", fmt.Errorf("load: %w", structure.ErrMissingIndex), exitMissingIndex},
		{"not an integer", fmt.Errorf("failed to read depth level: %w", parseErr), exitInvalidInput},
		{"depth out of range", depthErr, exitInvalidInput},
		{"no answer", fmt.Errorf("no answer: %w", io.ErrUnexpectedEOF), exitInvalidInput},
		{"anything else", errors.New("disk full"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
