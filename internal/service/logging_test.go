//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepository) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepository) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	docs, _ := args.Get(0).([]*repository.LogEntryDocument)
	return docs, args.Error(1)
}

func (m *MockLogsRepository) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func cookAudit() *model.LogEntry {
	return &model.LogEntry{
		Level:       "info",
		Message:     "Recipe cooked",
		RequestID:   "req-cook-1",
		Method:      "POST",
		Path:        "/api/inventory/cook",
		StatusCode:  200,
		UserID:      "alice",
		HouseholdID: "home",
		ActionType:  "cook",
		Fields:      map[string]interface{}{"recipe": "pancakes", "deductions": 3, "leftovers": 2},
	}
}

func TestLoggingService_CreateLog(t *testing.T) {
	t.Run("stamps id and time and keeps the audit detail", func(t *testing.T) {
		repo := new(MockLogsRepository)
		var stored *repository.LogEntryDocument
		repo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*repository.LogEntryDocument) }).
			Return(nil)

		entry := cookAudit()
		require.NoError(t, NewLoggingService(repo).CreateLog(context.Background(), entry))

		require.NotNil(t, stored)
		assert.False(t, entry.ID.IsZero())
		assert.Equal(t, entry.ID, stored.ID)
		assert.Equal(t, time.UTC, stored.Timestamp.Location())
		assert.Equal(t, "home", stored.HouseholdID)
		assert.Equal(t, "cook", stored.ActionType)
		assert.Equal(t, "pancakes", stored.Fields["recipe"])
	})

	t.Run("keeps an id and time set by the caller", func(t *testing.T) {
		repo := new(MockLogsRepository)
		id := primitive.NewObjectID()
		at := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
			return doc.ID == id && doc.Timestamp.Equal(at)
		})).Return(nil)

		entry := cookAudit()
		entry.ID, entry.Timestamp = id, at
		assert.NoError(t, NewLoggingService(repo).CreateLog(context.Background(), entry))
		repo.AssertExpectations(t)
	})

	t.Run("store error is returned", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("logs collection unavailable"))

		assert.Error(t, NewLoggingService(repo).CreateLog(context.Background(), cookAudit()))
	})
}

func TestLoggingService_CreateLogs(t *testing.T) {
	tests := []struct {
		name      string
		entries   []*model.LogEntry
		storeErr  error
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "one batch for a flush",
			entries:   []*model.LogEntry{cookAudit(), {Level: "info", Message: "HTTP request", HouseholdID: "home", StatusCode: 200}},
			wantCalls: 1,
		},
		{
			name:    "empty batch skips the store",
			entries: nil,
		},
		{
			name:      "store error is returned",
			entries:   []*model.LogEntry{cookAudit()},
			storeErr:  errors.New("logs collection unavailable"),
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLogsRepository)
			repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
				return len(docs) == len(tt.entries)
			})).Return(tt.storeErr)

			err := NewLoggingService(repo).CreateLogs(context.Background(), tt.entries)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertNumberOfCalls(t, "CreateMany", tt.wantCalls)
			for _, e := range tt.entries {
				assert.False(t, e.ID.IsZero())
			}
		})
	}
}

func TestLoggingService_QueryLogs(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("household audit history", func(t *testing.T) {
		repo := new(MockLogsRepository)
		want := repository.LogQueryOptions{HouseholdID: "home", ActionType: "cook", StartTime: &since, Limit: 20}
		repo.On("Query", mock.Anything, want).Return([]*repository.LogEntryDocument{
			{ID: primitive.NewObjectID(), HouseholdID: "home", UserID: "bob", ActionType: "cook", Message: "Recipe cooked"},
			{ID: primitive.NewObjectID(), HouseholdID: "home", UserID: "alice", ActionType: "cook", Message: "Recipe cooked"},
		}, nil)

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(),
			model.LogQueryOptions{HouseholdID: "home", ActionType: "cook", StartTime: &since, Limit: 20})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "bob", entries[0].UserID)
		assert.Equal(t, "home", entries[1].HouseholdID)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(MockLogsRepository)
		repo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("logs collection unavailable"))

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), model.LogQueryOptions{})

		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	repo := new(MockLogsRepository)
	repo.On("Count", mock.Anything, repository.LogQueryOptions{HouseholdID: "home", Level: "error"}).Return(int64(3), nil)
	repo.On("Count", mock.Anything, repository.LogQueryOptions{}).Return(int64(0), errors.New("logs collection unavailable"))
	svc := NewLoggingService(repo)

	n, err := svc.CountLogs(context.Background(), model.LogQueryOptions{HouseholdID: "home", Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.CountLogs(context.Background(), model.LogQueryOptions{})
	assert.Error(t, err)
}

func TestLoggingService_DocumentRoundTrip(t *testing.T) {
	svc := &LoggingServiceImpl{}
	entry := cookAudit()
	entry.Duration = 42
	entry.IP = "192.0.2.10"
	entry.UserAgent = "pantry-app/2.1"
	entry.Error = "not enough left"

	got := svc.documentToModel(svc.modelToDocument(entry))

	assert.Equal(t, *entry, got)
}
