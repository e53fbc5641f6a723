package prompt

import (
	"context"
	"fmt"
	"io"
)

// Scripted is an in-memory Prompter that replays canned answers.
type Scripted struct {
	Directory    string
	DirectoryErr error
	// Answers are raw lines handed to ReadInteger, in order.
	Answers []string

	// Asked records every label and title seen, in order.
	Asked []string
}

// ChooseDirectory returns the scripted directory.
func (s *Scripted) ChooseDirectory(_ context.Context, title string) (string, error) {
	s.Asked = append(s.Asked, title)
	if s.DirectoryErr != nil {
		return "", s.DirectoryErr
	}
	return s.Directory, nil
}

// ReadInteger parses the next scripted answer.
func (s *Scripted) ReadInteger(_ context.Context, label string) (int, error) {
	s.Asked = append(s.Asked, label)
	if len(s.Answers) == 0 {
		return 0, fmt.Errorf("no answer to %q: %w", label, io.ErrUnexpectedEOF)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return ParseInteger(answer)
}
