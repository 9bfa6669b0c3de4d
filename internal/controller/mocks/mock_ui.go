// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/cstyle/internal/controller"
	m "github.com/mouse-blink/cstyle/internal/model"
)

var _ controller.UI = (*MockUI)(nil)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a mock that asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mu := &MockUI{}
	mu.Mock.Test(t)

	t.Cleanup(func() { mu.AssertExpectations(t) })

	return mu
}

// Start provides a mock function.
func (mu *MockUI) Start(options ...controller.StartOption) error {
	ret := mu.Called(len(options))

	return ret.Error(0)
}

// Close provides a mock function.
func (mu *MockUI) Close() {
	mu.Called()
}

// Wait provides a mock function.
func (mu *MockUI) Wait() {
	mu.Called()
}

// DisplayReport provides a mock function.
func (mu *MockUI) DisplayReport(report m.Report) error {
	ret := mu.Called(report)

	return ret.Error(0)
}

// DisplayReportSaved provides a mock function.
func (mu *MockUI) DisplayReportSaved(path m.Path) {
	mu.Called(path)
}

// DisplayReports provides a mock function.
func (mu *MockUI) DisplayReports(reports []m.Report) error {
	ret := mu.Called(reports)

	return ret.Error(0)
}

// DisplayRules provides a mock function.
func (mu *MockUI) DisplayRules(rules []m.Rule) error {
	ret := mu.Called(rules)

	return ret.Error(0)
}
