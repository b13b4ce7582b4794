// pattern: Functional Core

package vcs

import (
	"context"
	"sync"
)

// MockInspector implements Inspector for tests. Statuses are looked up by
// directory path; unconfigured paths report StatusNotARepo.
type MockInspector struct {
	mu       sync.Mutex
	statuses map[string]Status
	branches []string

	// SetDefaultBranchError, when set, is returned by SetDefaultBranch.
	SetDefaultBranchError error
}

// NewMockInspector creates an empty MockInspector.
func NewMockInspector() *MockInspector {
	return &MockInspector{statuses: make(map[string]Status)}
}

// SetStatus configures the status reported for dir.
func (m *MockInspector) SetStatus(dir string, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[dir] = status
}

// Inspect returns the configured status for dir.
func (m *MockInspector) Inspect(_ context.Context, dir string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	if status, ok := m.statuses[dir]; ok {
		return status
	}
	return StatusNotARepo
}

// SetDefaultBranch records the requested branch name.
func (m *MockInspector) SetDefaultBranch(_ context.Context, branch string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.branches = append(m.branches, branch)
	return m.SetDefaultBranchError
}

// DefaultBranchCalls returns the branch names passed to SetDefaultBranch.
func (m *MockInspector) DefaultBranchCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.branches))
	copy(out, m.branches)
	return out
}
