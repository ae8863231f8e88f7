package sheets

import (
	"context"
	"sync"

	"github.com/Veraticus/ewaste-impact/internal/service"
)

// MockWriter records reports instead of publishing them.
type MockWriter struct {
	WriteFunc func(ctx context.Context, report *service.ImpactReport) error
	Reports   []*service.ImpactReport
	mu        sync.Mutex
}

var _ service.ReportWriter = (*MockWriter)(nil)

// NewMockWriter creates a new mock writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// Write records report and returns WriteFunc's result, if set.
func (m *MockWriter) Write(ctx context.Context, report *service.ImpactReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Reports = append(m.Reports, report)
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, report)
	}
	return nil
}

// Calls returns the number of Write calls so far.
func (m *MockWriter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Reports)
}
