// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockLocationRepositoryInterface struct {
	mock.Mock
}

func (m *MockLocationRepositoryInterface) List(ctx context.Context, scope model.OwnerScope) ([]model.Location, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockLocationRepositoryInterface) Get(ctx context.Context, id string) (*model.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockLocationRepositoryInterface) Create(ctx context.Context, loc *model.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}
