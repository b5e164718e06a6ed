package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"ouibooking.backend/internal/domain/entities"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/domain/repositories"
	"ouibooking.backend/pkg/crypto"
	"ouibooking.backend/pkg/logger"
)

// UserUsecase handles the admin users-management surface
type UserUsecase struct {
	userRepo repositories.UserRepository
	botRepo  repositories.BotRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, botRepo repositories.BotRepository) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		botRepo:  botRepo,
	}
}

// ListUsers returns users in insertion order, optionally filtered by a
// case-insensitive search over name, email and role.
func (u *UserUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// GetUser returns a single user by ID
func (u *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// AddUser creates an account with an admin-chosen role
func (u *UserUsecase) AddUser(ctx context.Context, input *entities.AddUserInput) (*entities.User, error) {
	email := strings.TrimSpace(input.Email)

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmailInUse
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: passwordHash,
		Role:         input.Role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update to an account
func (u *UserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name.Valid {
		user.Name = strings.TrimSpace(input.Name.String)
	}
	if input.Email.Valid {
		email := strings.TrimSpace(input.Email.String)
		if !strings.EqualFold(email, user.Email) {
			existing, err := u.userRepo.GetByEmail(ctx, email)
			if err == nil && existing.ID != id {
				return nil, domainerrors.ErrEmailInUse
			}
			if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return nil, err
			}
		}
		user.Email = email
	}
	if input.Role.Valid {
		role := entities.UserRole(input.Role.String)
		if role != entities.UserRoleAdmin && role != entities.UserRoleUser {
			return nil, domainerrors.Validation("role must be admin or user")
		}
		user.Role = role
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account along with every bot it owns
func (u *UserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	bots, err := u.botRepo.ListByUser(ctx, id)
	if err != nil {
		return err
	}
	for _, bot := range bots {
		if err := u.botRepo.Delete(ctx, bot.ID); err != nil {
			return err
		}
	}
	if len(bots) > 0 {
		logger.Info(ctx, "cascade-deleted bots for removed user",
			zap.String("user_id", id.String()),
			zap.Int("bot_count", len(bots)),
		)
	}

	return u.userRepo.Delete(ctx, id)
}
