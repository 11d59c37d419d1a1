package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/validation"
)

type UserService struct {
	repo store.Repository
}

func NewUserService(repo store.Repository) *UserService {
	return &UserService{repo: repo}
}

func (us *UserService) CreateUser(ctx context.Context, name, email, homeCurrency string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("user name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return nil, fmt.Errorf("user name too long (max %d characters)", constants.MaxNameLen)
	}

	home, err := validation.NormalizeCurrency(strings.TrimSpace(homeCurrency))
	if err != nil {
		return nil, fmt.Errorf("home currency: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        strings.TrimSpace(email),
		HomeCurrency: home,
		Lifecycle:    model.NewLifecycle(),
	}

	id, err := us.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

func (us *UserService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return us.repo.GetUser(ctx, userID)
}

func (us *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return us.repo.ListUsers(ctx)
}
