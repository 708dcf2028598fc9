package commandanalysis

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// TokenClassifier decides a command's shape from its standalone delimiter tokens.
type TokenClassifier struct{}

// NewTokenClassifier creates a new TokenClassifier.
func NewTokenClassifier() ports.CommandClassifier {
	return &TokenClassifier{}
}

/*
Classify implements the ports.CommandClassifier interface.

The checks run in priority order and the first match wins:
 1. the last token is "&" (Background),
 2. the first token equal to "|" (Pipeline),
 3. the first token equal to ">>" (Redirect),
 4. otherwise Plain.

Nothing is validated here; a line such as "ls | wc &" is Background.
*/
func (c *TokenClassifier) Classify(tokens []string) command.Shape {
	if len(tokens) == 0 {
		return command.PlainShape
	}
	if last := len(tokens) - 1; tokens[last] == command.BackgroundToken {
		return command.Shape{Kind: command.Background, Index: last}
	}
	if i := indexOf(tokens, command.PipeToken); i >= 0 {
		return command.Shape{Kind: command.Pipeline, Index: i}
	}
	if i := indexOf(tokens, command.AppendToken); i >= 0 {
		return command.Shape{Kind: command.Redirect, Index: i}
	}
	return command.PlainShape
}
