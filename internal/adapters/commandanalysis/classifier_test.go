package commandanalysis

import (
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
)

func TestNewTokenClassifier(t *testing.T) {
	classifier := NewTokenClassifier()
	if classifier == nil {
		t.Fatal("NewTokenClassifier() returned nil")
	}
	if _, ok := classifier.(*TokenClassifier); !ok {
		t.Errorf("NewTokenClassifier() did not return a *TokenClassifier, got %T", classifier)
	}
}

func TestTokenClassifier_Classify(t *testing.T) {
	classifier := NewTokenClassifier()
	tests := []struct {
		name   string
		tokens []string
		want   command.Shape
	}{
		{
			name:   "empty sequence",
			tokens: nil,
			want:   command.PlainShape,
		},
		{
			name:   "simple command no args",
			tokens: []string{"ls"},
			want:   command.PlainShape,
		},
		{
			name:   "simple command with args",
			tokens: []string{"ls", "-l", "/tmp"},
			want:   command.PlainShape,
		},
		{
			name:   "trailing ampersand",
			tokens: []string{"sleep", "10", "&"},
			want:   command.Shape{Kind: command.Background, Index: 2},
		},
		{
			name:   "ampersand not last is an argument",
			tokens: []string{"echo", "&", "x"},
			want:   command.PlainShape,
		},
		{
			name:   "pipe",
			tokens: []string{"printf", "hello", "|", "cat"},
			want:   command.Shape{Kind: command.Pipeline, Index: 2},
		},
		{
			name:   "first of several pipes wins",
			tokens: []string{"a", "|", "b", "|", "c"},
			want:   command.Shape{Kind: command.Pipeline, Index: 1},
		},
		{
			name:   "pipe inside a word is not a delimiter",
			tokens: []string{"echo", "a|b"},
			want:   command.PlainShape,
		},
		{
			name:   "append redirect",
			tokens: []string{"echo", "hi", ">>", "out.txt"},
			want:   command.Shape{Kind: command.Redirect, Index: 2},
		},
		{
			name:   "single angle bracket is an argument",
			tokens: []string{"echo", "hi", ">", "out.txt"},
			want:   command.PlainShape,
		},
		{
			name:   "pipe takes priority over redirect",
			tokens: []string{"echo", ">>", "f", "|", "cat"},
			want:   command.Shape{Kind: command.Pipeline, Index: 3},
		},
		{
			name:   "background takes priority over pipe",
			tokens: []string{"ls", "|", "wc", "&"},
			want:   command.Shape{Kind: command.Background, Index: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.tokens); got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.tokens, got, tt.want)
			}
		})
	}
}
