// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/cstyle/internal/domain"
)

var _ domain.Workflow = (*MockWorkflow)(nil)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a mock that asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mw := &MockWorkflow{}
	mw.Mock.Test(t)

	t.Cleanup(func() { mw.AssertExpectations(t) })

	return mw
}

// Check provides a mock function.
func (mw *MockWorkflow) Check(ctx context.Context, args domain.CheckArgs) error {
	ret := mw.Called(ctx, args)

	return ret.Error(0)
}

// View provides a mock function.
func (mw *MockWorkflow) View(args domain.ViewArgs) error {
	ret := mw.Called(args)

	return ret.Error(0)
}

// Rules provides a mock function.
func (mw *MockWorkflow) Rules() error {
	ret := mw.Called()

	return ret.Error(0)
}
