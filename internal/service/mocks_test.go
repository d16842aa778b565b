package service

import (
	"context"

	"ideaboard/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id uint, updates map[string]any) (*models.User, error) {
	args := m.Called(ctx, id, updates)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockIdeaRepo struct {
	mock.Mock
}

func (m *mockIdeaRepo) Create(ctx context.Context, idea *models.Idea) error {
	args := m.Called(ctx, idea)
	if args.Error(0) == nil {
		idea.ID = 1
	}
	return args.Error(0)
}

func (m *mockIdeaRepo) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*models.Idea), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIdeaRepo) List(ctx context.Context) ([]models.Idea, error) {
	args := m.Called(ctx)
	if i := args.Get(0); i != nil {
		return i.([]models.Idea), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIdeaRepo) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockRoleRepo struct {
	mock.Mock
}

func (m *mockRoleRepo) Create(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	if args.Error(0) == nil {
		role.ID = 1
	}
	return args.Error(0)
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*models.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockApplicationRepo struct {
	mock.Mock
}

func (m *mockApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	args := m.Called(ctx, application)
	if args.Error(0) == nil {
		application.ID = 1
	}
	return args.Error(0)
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func assertAppErrorCode(err error, code string) bool {
	appErr, ok := err.(*models.AppError)
	return ok && appErr.Code == code
}
