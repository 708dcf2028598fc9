package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockCommandClassifier is a mock implementation of ports.CommandClassifier.
type MockCommandClassifier struct {
	// ClassifyFunc allows you to set a custom function for the Classify method.
	ClassifyFunc func(tokens []string) command.Shape
	// ClassifyCalls keeps track of the arguments passed to Classify.
	ClassifyCalls [][]string
}

// Classify implements the ports.CommandClassifier interface.
// It calls ClassifyFunc if it's set, otherwise every command is plain.
func (m *MockCommandClassifier) Classify(tokens []string) command.Shape {
	m.ClassifyCalls = append(m.ClassifyCalls, tokens)
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(tokens)
	}
	return command.PlainShape
}

// ShapeOf returns a MockCommandClassifier that always answers shape.
func ShapeOf(shape command.Shape) *MockCommandClassifier {
	return &MockCommandClassifier{
		ClassifyFunc: func([]string) command.Shape { return shape },
	}
}

var _ ports.CommandClassifier = (*MockCommandClassifier)(nil)
