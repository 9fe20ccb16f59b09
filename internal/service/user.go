package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service/ports"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo     ports.UserRepo
	validate *validator.Validate
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo, validate: validator.New()}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	role := input.Role
	switch role {
	case "":
		role = domain.RoleCustomer
	case domain.RoleCustomer, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          email,
		Username:       input.Username,
		Role:           role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
