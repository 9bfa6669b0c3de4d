// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/cstyle/internal/adapter"
	m "github.com/mouse-blink/cstyle/internal/model"
)

var (
	_ adapter.DeclarationProvider = (*MockDeclarationProvider)(nil)
	_ adapter.ReportStore         = (*MockReportStore)(nil)
	_ adapter.SourceFSAdapter     = (*MockSourceFSAdapter)(nil)
)

// MockDeclarationProvider is a mock of adapter.DeclarationProvider.
type MockDeclarationProvider struct {
	mock.Mock
}

// NewMockDeclarationProvider creates a mock that asserts its expectations on cleanup.
func NewMockDeclarationProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeclarationProvider {
	mp := &MockDeclarationProvider{}
	mp.Mock.Test(t)

	t.Cleanup(func() { mp.AssertExpectations(t) })

	return mp
}

// Declarations provides a mock function.
func (mp *MockDeclarationProvider) Declarations(ctx context.Context, path m.Path, kind m.DeclarationKind) ([]m.Declaration, error) {
	ret := mp.Called(ctx, path, kind)

	var decls []m.Declaration
	if v := ret.Get(0); v != nil {
		decls = v.([]m.Declaration)
	}

	return decls, ret.Error(1)
}

// MockReportStore is a mock of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a mock that asserts its expectations on cleanup.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	ms := &MockReportStore{}
	ms.Mock.Test(t)

	t.Cleanup(func() { ms.AssertExpectations(t) })

	return ms
}

// SaveReport provides a mock function.
func (ms *MockReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	ret := ms.Called(dir, report)

	return ret.Get(0).(m.Path), ret.Error(1)
}

// LoadReports provides a mock function.
func (ms *MockReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	ret := ms.Called(dir)

	var reports []m.Report
	if v := ret.Get(0); v != nil {
		reports = v.([]m.Report)
	}

	return reports, ret.Error(1)
}

// MockSourceFSAdapter is a mock of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// NewMockSourceFSAdapter creates a mock that asserts its expectations on cleanup.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	ma := &MockSourceFSAdapter{}
	ma.Mock.Test(t)

	t.Cleanup(func() { ma.AssertExpectations(t) })

	return ma
}

// Load provides a mock function.
func (ma *MockSourceFSAdapter) Load(path m.Path) (m.SourceDocument, error) {
	ret := ma.Called(path)

	return ret.Get(0).(m.SourceDocument), ret.Error(1)
}

// ReadFile provides a mock function.
func (ma *MockSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	ret := ma.Called(path)

	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}

	return data, ret.Error(1)
}

// HashFile provides a mock function.
func (ma *MockSourceFSAdapter) HashFile(path m.Path) (string, error) {
	ret := ma.Called(path)

	return ret.String(0), ret.Error(1)
}

// FileInfo provides a mock function.
func (ma *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := ma.Called(path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}
