//go:build unit

package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource"
	"github.com/nordavia/airport-aip-service/internal/pkg/extract"
	"github.com/nordavia/airport-aip-service/internal/pkg/registry"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCountryRouter is a testify mock of CountryRouter.
type MockCountryRouter struct {
	mock.Mock
}

func NewMockCountryRouter(t mockConstructorTestingT) *MockCountryRouter {
	m := &MockCountryRouter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCountryRouter) Resolve(airportCode string) (registry.Route, error) {
	args := m.Called(airportCode)

	return args.Get(0).(registry.Route), args.Error(1)
}

func (m *MockCountryRouter) SourceFor(route registry.Route) (docsource.DocumentSource, error) {
	args := m.Called(route)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(docsource.DocumentSource), args.Error(1)
}

func (m *MockCountryRouter) DialectFor(route registry.Route) extract.Dialect {
	args := m.Called(route)

	return args.Get(0).(extract.Dialect)
}

// MockDocumentSource is a testify mock of docsource.DocumentSource.
type MockDocumentSource struct {
	mock.Mock
}

func NewMockDocumentSource(t mockConstructorTestingT) *MockDocumentSource {
	m := &MockDocumentSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDocumentSource) Fetch(ctx context.Context, airportCode string) (string, error) {
	args := m.Called(ctx, airportCode)

	return args.String(0), args.Error(1)
}

// MockRecordCacher is a testify mock of RecordCacher.
type MockRecordCacher struct {
	mock.Mock
}

func NewMockRecordCacher(t mockConstructorTestingT) *MockRecordCacher {
	m := &MockRecordCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecordCacher) GetCacheKey(airportCode string) string {
	args := m.Called(airportCode)

	return args.String(0)
}

func (m *MockRecordCacher) GetLockKey(airportCode string) string {
	args := m.Called(airportCode)

	return args.String(0)
}

func (m *MockRecordCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	args := m.Called(ctx, key, timeout)

	return args.Bool(0), args.Error(1)
}

func (m *MockRecordCacher) ReleaseLock(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

func (m *MockRecordCacher) GetRecord(ctx context.Context, key string) (dto.AirportRecord, error) {
	args := m.Called(ctx, key)

	return args.Get(0).(dto.AirportRecord), args.Error(1)
}

func (m *MockRecordCacher) SetRecord(ctx context.Context, key string, record dto.AirportRecord, expiration time.Duration) error {
	args := m.Called(ctx, key, record, expiration)

	return args.Error(0)
}

// MockRecordStorer is a testify mock of RecordStorer.
type MockRecordStorer struct {
	mock.Mock
}

func NewMockRecordStorer(t mockConstructorTestingT) *MockRecordStorer {
	m := &MockRecordStorer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecordStorer) GetForToday(ctx context.Context, airportCode string) (dto.AirportRecord, error) {
	args := m.Called(ctx, airportCode)

	return args.Get(0).(dto.AirportRecord), args.Error(1)
}

func (m *MockRecordStorer) Save(ctx context.Context, record dto.AirportRecord) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}
