package extraction

import (
	"errors"
	"fmt"
)

// ErrInvalidDepth is returned for depth levels other than 1 or 2.
var ErrInvalidDepth = errors.New("depth level must be 1 or 2")

// Depth selects how much is extracted per file.
type Depth int

const (
	// DepthContent captures file content only.
	DepthContent Depth = 1
	// DepthDeclarations also captures function and class names.
	DepthDeclarations Depth = 2
)

// ParseDepth validates an integer depth level.
func ParseDepth(n int) (Depth, error) {
	d := Depth(n)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate reports whether d is a supported depth level.
func (d Depth) Validate() error {
	if d != DepthContent && d != DepthDeclarations {
		return fmt.Errorf("%w, got %d", ErrInvalidDepth, int(d))
	}
	return nil
}

// WantsDeclarations reports whether declaration names should be extracted.
func (d Depth) WantsDeclarations() bool {
	return d >= DepthDeclarations
}
