// Package declarations pulls function and class names out of Python source
// using the tree-sitter Python grammar.
package declarations

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrUnparseable marks source that does not parse as Python.
var ErrUnparseable = errors.New("source does not parse as Python")

const (
	nodeFunction = "function_definition"
	nodeClass    = "class_definition"
)

// Python 2 statements the grammar still accepts but Python 3 rejects.
var legacyStatements = map[string]bool{
	"print_statement": true,
	"exec_statement":  true,
}

// Wrapper nodes whose children belong to the enclosing statement. Expanding
// them in place keeps nesting levels aligned with Python's own syntax tree.
var transparentNodes = map[string]bool{
	"block":                true,
	"decorated_definition": true,
	"else_clause":          true,
	"finally_clause":       true,
}

// Names holds declaration names in breadth-first discovery order: every
// definition at one nesting level comes before any definition nested deeper.
type Names struct {
	Functions []string
	Classes   []string
}

// Result is the outcome of one extraction. When Err is set the Names are empty.
type Result struct {
	Names
	Err error
}

// Parsed reports whether the source parsed cleanly.
func (r Result) Parsed() bool {
	return r.Err == nil
}

// Extractor parses Python source with tree-sitter.
type Extractor struct {
	lang *sitter.Language
}

// NewExtractor creates an Extractor for the Python grammar.
func NewExtractor() *Extractor {
	return &Extractor{lang: python.GetLanguage()}
}

// Extract returns every function and class definition name found anywhere in
// source, nested ones included, level by level. Source with any syntax error,
// Python 2 statements included, yields empty names and ErrUnparseable in
// Result.Err; Extract itself never fails.
func (e *Extractor) Extract(ctx context.Context, source string) Result {
	src := []byte(source)

	root, err := sitter.ParseCtx(ctx, src, e.lang)
	if err != nil {
		return Result{Names: emptyNames(), Err: fmt.Errorf("%w: %v", ErrUnparseable, err)}
	}
	if root == nil || root.HasError() {
		return Result{Names: emptyNames(), Err: ErrUnparseable}
	}

	names := emptyNames()
	legacy := false
	walk(root, func(n *sitter.Node) {
		switch t := n.Type(); {
		case legacyStatements[t]:
			legacy = true
		case t == nodeFunction:
			// async def is a separate declaration kind and is not reported
			if isAsync(n) {
				return
			}
			if name := n.ChildByFieldName("name"); name != nil {
				names.Functions = append(names.Functions, name.Content(src))
			}
		case t == nodeClass:
			if name := n.ChildByFieldName("name"); name != nil {
				names.Classes = append(names.Classes, name.Content(src))
			}
		}
	})
	if legacy {
		return Result{Names: emptyNames(), Err: fmt.Errorf("%w: Python 2 statement", ErrUnparseable)}
	}

	return Result{Names: names}
}

func emptyNames() Names {
	return Names{Functions: []string{}, Classes: []string{}}
}

// walk visits named nodes breadth-first through a FIFO queue.
func walk(root *sitter.Node, visit func(*sitter.Node)) {
	queue := []*sitter.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		visit(n)
		queue = appendChildren(queue, n)
	}
}

// appendChildren queues the named children of n, expanding transparent
// wrappers in place.
func appendChildren(queue []*sitter.Node, n *sitter.Node) []*sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if transparentNodes[child.Type()] {
			queue = appendChildren(queue, child)
			continue
		}
		queue = append(queue, child)
	}
	return queue
}

func isAsync(fn *sitter.Node) bool {
	for i := 0; i < int(fn.ChildCount()); i++ {
		switch fn.Child(i).Type() {
		case "async":
			return true
		case "def":
			return false
		}
	}
	return false
}
