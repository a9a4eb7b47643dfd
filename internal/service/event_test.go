package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/pfleegoree/planit/internal/domain"
	"github.com/pfleegoree/planit/internal/dto"
	"github.com/pfleegoree/planit/internal/ingest"
	"github.com/pfleegoree/planit/internal/repository"
)

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Event, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockIngestRunner is a mock implementation of IngestRunner
type MockIngestRunner struct {
	mock.Mock
}

func (m *MockIngestRunner) Run(ctx context.Context) ingest.Stats {
	args := m.Called(ctx)
	return args.Get(0).(ingest.Stats)
}

func TestEventService_ListEvents_NoFilters(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockIngestor := new(MockIngestRunner)
	log := zap.NewNop()

	service := NewEventService(mockRepo, mockIngestor, log)

	mockRepo.On("List", mock.Anything, repository.EventFilter{}).
		Return([]domain.Event{{ID: 1}, {ID: 2}}, nil)

	events, err := service.ListEvents(&dto.ListEventsRequest{})

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	mockRepo.AssertExpectations(t)
}

func TestEventService_ListEvents_AllSentinelMeansNoFilter(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockIngestor := new(MockIngestRunner)
	log := zap.NewNop()

	service := NewEventService(mockRepo, mockIngestor, log)

	mockRepo.On("List", mock.Anything, repository.EventFilter{}).
		Return([]domain.Event{{ID: 1}}, nil)

	events, err := service.ListEvents(&dto.ListEventsRequest{
		Categories: []string{"All"},
		Genres:     []string{},
	})

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	mockRepo.AssertExpectations(t)
}

func TestEventService_ListEvents_NormalizesValues(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockIngestor := new(MockIngestRunner)
	log := zap.NewNop()

	service := NewEventService(mockRepo, mockIngestor, log)

	expected := repository.EventFilter{
		Categories: []string{"Music"},
		Genres:     []string{"Rock"},
	}
	mockRepo.On("List", mock.Anything, expected).Return([]domain.Event{}, nil)

	_, err := service.ListEvents(&dto.ListEventsRequest{
		Categories: []string{" Music ", "", "ALL"},
		Genres:     []string{" Rock ", "  "},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestEventService_ListEvents_GenreOnly(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockIngestor := new(MockIngestRunner)
	log := zap.NewNop()

	service := NewEventService(mockRepo, mockIngestor, log)

	expected := repository.EventFilter{Genres: []string{"Rock", "Jazz"}}
	mockRepo.On("List", mock.Anything, expected).Return([]domain.Event{}, nil)

	_, err := service.ListEvents(&dto.ListEventsRequest{
		Genres: []string{"Rock", "Jazz"},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestEventService_ListEvents_AllIsNotAGenreSentinel(t *testing.T) {
	// Only the category filter honors the "All" placeholder.
	mockRepo := new(MockEventRepository)
	mockIngestor := new(MockIngestRunner)
	log := zap.NewNop()

	service := NewEventService(mockRepo, mockIngestor, log)

	expected := repository.EventFilter{Genres: []string{"All"}}
	mockRepo.On("List", mock.Anything, expected).Return([]domain.Event{}, nil)

	_, err := service.ListEvents(&dto.ListEventsRequest{
		Genres: []string{"All"},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestEventService_ListEvents_RepositoryError(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockIngestor := new(MockIngestRunner)
	log := zap.NewNop()

	service := NewEventService(mockRepo, mockIngestor, log)

	mockRepo.On("List", mock.Anything, repository.EventFilter{}).
		Return(nil, errors.New("db is down"))

	events, err := service.ListEvents(&dto.ListEventsRequest{})

	assert.Error(t, err)
	assert.Nil(t, events)
}

func TestEventService_TriggerFetch(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockIngestor := new(MockIngestRunner)
	log := zap.NewNop()

	service := NewEventService(mockRepo, mockIngestor, log)

	mockIngestor.On("Run", mock.Anything).Return(ingest.Stats{Inserted: 3})

	service.TriggerFetch()

	mockIngestor.AssertNumberOfCalls(t, "Run", 1)
}
