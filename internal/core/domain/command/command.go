/*
Package command defines the core domain entities for a single dispatched
command line: its execution shape, the views derived from it, and the
errors each dispatch step can produce.
*/
package command

import "fmt"

// Reserved delimiter tokens. They are recognized only as standalone tokens.
const (
	BackgroundToken = "&"
	PipeToken       = "|"
	AppendToken     = ">>"
)

// Kind is the execution shape of a command line.
type Kind int

const (
	Plain Kind = iota
	Background
	Pipeline
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Background:
		return "background"
	case Pipeline:
		return "pipeline"
	case Redirect:
		return "redirect"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

/*
Shape is the classification of one token sequence. Index is the position
of the delimiter token that selected the shape (the trailing "&", the
first "|" or the first ">>"), or -1 for Plain.

Shape never owns the tokens; the methods below build views over the
caller's sequence without modifying it.
*/
type Shape struct {
	Kind  Kind
	Index int
}

// PlainShape is the shape of a command without delimiters.
var PlainShape = Shape{Kind: Plain, Index: -1}

// Head returns the argument vector of the first (or only) program.
func (s Shape) Head(tokens []string) []string {
	if s.Kind == Plain || s.Index < 0 || s.Index > len(tokens) {
		return tokens[:len(tokens):len(tokens)]
	}
	return tokens[:s.Index:s.Index]
}

// Tail returns the argument vector of a pipeline's second program.
// It is nil for every other shape.
func (s Shape) Tail(tokens []string) []string {
	if s.Kind != Pipeline || s.Index+1 > len(tokens) {
		return nil
	}
	return tokens[s.Index+1 : len(tokens) : len(tokens)]
}

// Target returns the file named after the ">>" marker, or "" when there is none.
func (s Shape) Target(tokens []string) string {
	if s.Kind != Redirect || s.Index+1 >= len(tokens) {
		return ""
	}
	return tokens[s.Index+1]
}

/*
Validate checks the shape against the tokens it was derived from.

The classifier itself never rejects anything; the dispatcher calls
Validate before starting any process so that malformed lines are
reported instead of reaching exec with a delimiter in argv.
*/
func (s Shape) Validate(tokens []string) error {
	switch s.Kind {
	case Plain:
		if len(tokens) == 0 {
			return ErrEmptyCommand
		}
	case Background:
		head := s.Head(tokens)
		if len(head) == 0 {
			return ErrEmptyCommand
		}
		for _, tok := range head {
			if tok == PipeToken || tok == AppendToken {
				return fmt.Errorf("%w: %q cannot be combined with %q", ErrUnsupportedShape, BackgroundToken, tok)
			}
		}
	case Pipeline:
		if len(s.Head(tokens)) == 0 || len(s.Tail(tokens)) == 0 {
			return fmt.Errorf("%w around %q", ErrEmptyStage, PipeToken)
		}
	case Redirect:
		if len(s.Head(tokens)) == 0 {
			return ErrEmptyCommand
		}
		if s.Target(tokens) == "" {
			return fmt.Errorf("%w after %q", ErrMissingTarget, AppendToken)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShape, s.Kind)
	}
	return nil
}
