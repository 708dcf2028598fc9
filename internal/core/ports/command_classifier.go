package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

/*
CommandClassifier defines the contract for deciding the execution shape of
a token sequence. This is a driven port, representing a domain capability.
*/
type CommandClassifier interface {
	Classify(tokens []string) command.Shape
}
