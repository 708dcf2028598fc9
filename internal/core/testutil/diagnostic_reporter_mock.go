package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockDiagnosticReporter collects reported errors instead of printing them.
type MockDiagnosticReporter struct {
	Reports []error
}

func (m *MockDiagnosticReporter) Report(err error) {
	m.Reports = append(m.Reports, err)
}

var _ ports.DiagnosticReporter = (*MockDiagnosticReporter)(nil)
