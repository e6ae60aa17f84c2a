package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/core/incidents"
)

type MockVisitorService struct {
	mock.Mock
}

func (m *MockVisitorService) RecordVisit(ctx context.Context, clientAddress string) {
	m.Called(ctx, clientAddress)
}

func (m *MockVisitorService) RecordResourceView(ctx context.Context, postID, clientAddress string) {
	m.Called(ctx, postID, clientAddress)
}

func (m *MockVisitorService) RecordPostVisitor(ctx context.Context, postID, clientAddress string) {
	m.Called(ctx, postID, clientAddress)
}

func (m *MockVisitorService) ListVisitors(ctx context.Context, page, limit int) (*domain.VisitorPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisitorPage), args.Error(1)
}

func (m *MockVisitorService) GetVisitor(ctx context.Context, ipAddress string) (*domain.Visitor, error) {
	args := m.Called(ctx, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) GetAllPosts(ctx context.Context) (*domain.AllPosts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllPosts), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Background(ctx context.Context) domain.Background {
	args := m.Called(ctx)
	return args.Get(0).(domain.Background)
}

func (m *MockMediaService) Story(ctx context.Context) domain.Story {
	args := m.Called(ctx)
	return args.Get(0).(domain.Story)
}

type MockChicagoService struct {
	mock.Mock
}

func (m *MockChicagoService) Raw(ctx context.Context) (*domain.ChicagoData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChicagoData), args.Error(1)
}

func (m *MockChicagoService) Summaries(ctx context.Context) (*incidents.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*incidents.Report), args.Error(1)
}
