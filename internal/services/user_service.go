package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/db_models"
	"autoescuelas/internal/models/request_models"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/internal/repositories"
	"autoescuelas/pkg/utils"
)

type UserServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.UserResponse, error)
	ListUsers(ctx context.Context, page int) (*response_models.AdminUserList, error)
}

type UserService struct {
	userRepository repositories.UserRepository
}

func NewUserService(userRepository repositories.UserRepository) UserServiceInterface {
	return &UserService{
		userRepository: userRepository,
	}
}

func (u *UserService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.userRepository.FindByEmail(ctx, email)
	if err != nil {
		logger.Log.WithError(err).Error("Error looking up user")
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	user := &db_models.User{
		Name:  req.Name,
		Email: email,
		Phone: req.Phone,
	}

	if err := u.userRepository.Insert(ctx, user); err != nil {
		// The unique index is the authority: a concurrent registration
		// that slipped past the lookup lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		logger.Log.WithError(err).Error("Error creating user")
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (u *UserService) ListUsers(ctx context.Context, page int) (*response_models.AdminUserList, error) {
	users, total, err := u.userRepository.List(ctx, page, adminPageSize)
	if err != nil {
		logger.Log.WithError(err).Error("Error listing users")
		return nil, utils.ErrDatabaseError
	}

	list := &response_models.AdminUserList{
		Users:      make([]response_models.AdminUserResponse, 0, len(users)),
		Page:       page,
		TotalPages: totalPages(total, adminPageSize),
	}
	for _, user := range users {
		list.Users = append(list.Users, response_models.AdminUserResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.Phone,
			CreatedAt: user.CreatedAt,
		})
	}

	return list, nil
}
