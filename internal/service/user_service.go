package service

import (
	"errors"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) List(role model.UserRole) ([]model.User, error) {
	return s.UserRepo.FindAll(role)
}

// SetRole đổi vai trò một user. Không cho tự hạ quyền SUPER_ADMIN cuối cùng.
func (s *UserService) SetRole(id uint, role model.UserRole) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if user.Role == model.SuperAdmin && role != model.SuperAdmin {
		count, err := s.UserRepo.CountByRole(model.SuperAdmin)
		if err != nil {
			return nil, err
		}
		if count <= 1 {
			return nil, util.ErrPermissionDenied
		}
	}

	user.Role = role
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetLocked(id uint, locked bool) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.IsLocked = locked
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(id uint, fullName string) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
