package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/core/incidents"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockPostRepository) IncrementViewCount(ctx context.Context, postID string) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostRepository) UpsertPost(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) TouchVisitor(ctx context.Context, ipAddress string, now time.Time) (bool, error) {
	args := m.Called(ctx, ipAddress, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockVisitorRepository) AttachIPData(ctx context.Context, ipAddress string, data *domain.IPData) error {
	args := m.Called(ctx, ipAddress, data)
	return args.Error(0)
}

func (m *MockVisitorRepository) IncrementVisitedPost(ctx context.Context, ipAddress, postID string) error {
	args := m.Called(ctx, ipAddress, postID)
	return args.Error(0)
}

func (m *MockVisitorRepository) GetVisitor(ctx context.Context, ipAddress string) (*domain.Visitor, error) {
	args := m.Called(ctx, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) ListVisitors(ctx context.Context, limit, offset int) ([]domain.Visitor, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Visitor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVisitorRepository) DumpVisitors(ctx context.Context) ([]domain.Visitor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visitor), args.Error(1)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) RandomBackground(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockMediaRepository) RandomStory(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockMediaRepository) AddBackground(ctx context.Context, link string) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockMediaRepository) AddStory(ctx context.Context, story string) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

type MockGeolocator struct {
	mock.Mock
}

func (m *MockGeolocator) Lookup(ctx context.Context, ipAddress string) (*domain.IPData, error) {
	args := m.Called(ctx, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IPData), args.Error(1)
}

type MockOpenDataSource struct {
	mock.Mock
}

func (m *MockOpenDataSource) Fetch(ctx context.Context, dataset incidents.Dataset) ([]byte, error) {
	args := m.Called(ctx, dataset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockDatasetCache struct {
	mock.Mock
}

func (m *MockDatasetCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockDatasetCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, body, ttl)
	return args.Error(0)
}
