package services

import (
	"context"
	"errors"

	"estate-cms/models"
	"estate-cms/repositories"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	RegisterInitialAdmin(ctx context.Context, req models.RegisterAdminRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Login checks the credentials and issues a session token. Unknown email and
// wrong password produce the same error.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !checkPassword(user.Password, req.Password) {
		return nil, models.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// RegisterInitialAdmin creates the first administrator. It refuses once any
// admin exists.
func (s *authService) RegisterInitialAdmin(ctx context.Context, req models.RegisterAdminRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsWithRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrAdminAlreadyExists
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, models.ErrUserAlreadyExists
	} else if !isNotFound(err) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func isNotFound(err error) bool {
	var notFound models.ErrorNotFound
	return errors.As(err, &notFound)
}
