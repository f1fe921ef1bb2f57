package services

import (
	"context"
	"strings"

	"estate-cms/models"
	"estate-cms/repositories"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx, repositories.ListOptions{Order: "id asc"})
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if !role.Valid() {
		return nil, models.NewValidationError("role: %q is not an allowed value", role)
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

	user := &models.User{Email: req.Email, Password: hashed, Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies the non-empty fields of req. A new password is hashed
// before it is stored.
func (s *userService) Update(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if email := strings.TrimSpace(req.Email); email != "" {
		other, err := s.userRepo.GetByEmail(ctx, email)
		if err == nil && other.ID != id {
			return nil, models.ErrUserAlreadyExists
		} else if err != nil && !isNotFound(err) {
			return nil, err
		}
		fields["email"] = email
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			return nil, models.NewValidationError("role: %q is not an allowed value", req.Role)
		}
		fields["role"] = req.Role
	}
	if req.Password != "" {
		hashed, err := hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}

	return s.userRepo.UpdateMerge(ctx, id, fields)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
