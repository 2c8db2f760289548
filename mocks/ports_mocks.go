package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	ports "github.com/olusolaa/metadata-drift-detector/internal/core/ports"
)

// MockSnapshotLoader is a mock implementation of ports.SnapshotLoader
type MockSnapshotLoader struct {
	mock.Mock
}

func (m *MockSnapshotLoader) Type() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSnapshotLoader) Load(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

// MockCategoryComparer is a mock implementation of ports.CategoryComparer
type MockCategoryComparer struct {
	mock.Mock
}

func (m *MockCategoryComparer) Category() domain.Category {
	args := m.Called()
	return args.Get(0).(domain.Category)
}

func (m *MockCategoryComparer) Compare(ctx context.Context, source, target *domain.Snapshot, opts domain.CollectionOptions) (domain.CategoryOutcome, error) {
	args := m.Called(ctx, source, target, opts)
	return args.Get(0).(domain.CategoryOutcome), args.Error(1)
}

// MockReporter is a mock implementation of ports.Reporter
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Report(ctx context.Context, report *domain.ComparisonReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// MockDriftAnalysisEngine is a mock implementation of ports.DriftAnalysisEngine
type MockDriftAnalysisEngine struct {
	mock.Mock
}

func (m *MockDriftAnalysisEngine) Run(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockLogger is a mock implementation of ports.Logger. Variadic arguments
// are recorded as a single slice.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debugf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *MockLogger) Infof(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *MockLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *MockLogger) Errorf(ctx context.Context, err error, format string, args ...any) {
	m.Called(ctx, err, format, args)
}

func (m *MockLogger) WithFields(fields map[string]any) ports.Logger {
	args := m.Called(fields)
	if args.Get(0) == nil {
		return m
	}
	return args.Get(0).(ports.Logger)
}

var (
	_ ports.SnapshotLoader      = (*MockSnapshotLoader)(nil)
	_ ports.CategoryComparer    = (*MockCategoryComparer)(nil)
	_ ports.Reporter            = (*MockReporter)(nil)
	_ ports.DriftAnalysisEngine = (*MockDriftAnalysisEngine)(nil)
	_ ports.Logger              = (*MockLogger)(nil)
)
