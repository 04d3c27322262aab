package service

import (
	"errors"
	"fmt"
	"hr_training_backend/internal/config"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/util"
	"hr_training_backend/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register tạo tài khoản mới ở trạng thái chưa xác thực email. Link xác
// thực được log ra thay vì gửi SMTP thật.
func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.VerifyToken = model.GenerateToken()

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}

	logger.Log.Info("Verification link issued",
		zap.String("email", user.Email),
		zap.String("link", fmt.Sprintf("%s/verify-email?token=%s", s.Cfg.Mail.FrontendBaseURL, user.VerifyToken)))
	return nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if user.IsLocked {
		return "", nil, util.ErrAccountLocked
	}
	if !user.EmailVerified {
		return "", nil, util.ErrEmailNotVerified
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.UserRepo.FindByVerifyToken(token)
	if err != nil || token == "" {
		return util.ErrInvalidVerifyToken
	}

	user.EmailVerified = true
	user.VerifyToken = ""
	return s.UserRepo.Update(user)
}

// ForgotPassword phát hành reset token sống 1 giờ. Không tiết lộ email có
// tồn tại hay không.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	expiry := time.Now().Add(1 * time.Hour)
	user.ResetToken = model.GenerateToken()
	user.ResetTokenExpiry = &expiry
	if err := s.UserRepo.Update(user); err != nil {
		return err
	}

	logger.Log.Info("Password reset link issued",
		zap.String("email", user.Email),
		zap.String("link", fmt.Sprintf("%s/reset-password?token=%s", s.Cfg.Mail.FrontendBaseURL, user.ResetToken)))
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	user, err := s.UserRepo.FindByResetToken(token)
	if err != nil || token == "" {
		return util.ErrInvalidResetToken
	}
	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return util.ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	return s.UserRepo.Update(user)
}

func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Update(user)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
