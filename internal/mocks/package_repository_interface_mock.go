// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockPackageRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackageRepositoryInterface) List(ctx context.Context, scope model.OwnerScope) ([]model.Package, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockPackageRepositoryInterface) Get(ctx context.Context, id string) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageRepositoryInterface) Insert(ctx context.Context, pkgs []model.Package) error {
	args := m.Called(ctx, pkgs)
	return args.Error(0)
}

func (m *MockPackageRepositoryInterface) ApplyDiff(ctx context.Context, diff model.Diff) error {
	args := m.Called(ctx, diff)
	return args.Error(0)
}
