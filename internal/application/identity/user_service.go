package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/identity"
	"github.com/warungpos/backend/internal/domain/shared"
)

// UserService handles back-office user accounts. It exists to give
// ledger entries a real recorded_by reference; session handling and
// permission checks stay out of scope.
type UserService struct {
	repo identity.Repository
}

// NewUserService creates a new UserService
func NewUserService(repo identity.Repository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a user
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("Username is already taken")
	}

	user, err := identity.NewUser(req.Username, req.Email, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByID retrieves a user
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List retrieves all users
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// ChangePassword replaces a user's password after verifying the old one
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return s.repo.Save(ctx, user)
}

// Deactivate disables a user account. Accounts are never deleted while
// ledger entries reference them.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Deactivate()
	return s.repo.Save(ctx, user)
}
