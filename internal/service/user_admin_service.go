package service

import (
	"errors"
	"fmt"

	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserNotFoundError is returned when a user id does not exist.
type UserNotFoundError struct {
	UserID uint
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found with ID %d", e.UserID)
}

// UserAdminService covers the admin-only user management operations.
type UserAdminService interface {
	ListUsers() ([]dto.UserDTO, error)
	UpdateUserRole(userID uint, role string) (*dto.UserDTO, error)
}

type userAdminService struct {
	userRepo repository.UserRepository
}

func NewUserAdminService(userRepo repository.UserRepository) UserAdminService {
	return &userAdminService{userRepo: userRepo}
}

func (s *userAdminService) ListUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		userDTO, err := toUserDTO(&users[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *userDTO)
	}
	return dtos, nil
}

func (s *userAdminService) UpdateUserRole(userID uint, role string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UserNotFoundError{UserID: userID}
		}
		return nil, fmt.Errorf("fetching user %d: %w", userID, err)
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update user role")
		return nil, fmt.Errorf("database error updating role: %w", err)
	}

	log.Info().Uint("userID", userID).Str("role", role).Msg("User role updated")
	return toUserDTO(user)
}
