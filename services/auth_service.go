package services

import (
	"rentmag/dto"
	"rentmag/errors"
	"rentmag/models"
	"rentmag/services/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// Register creates a user with a hashed password and issues a token.
func (s *AuthService) Register(attrs dto.RegisterRequest) (*models.User, string, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", attrs.Email).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", errors.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(attrs.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Name:     attrs.Name,
		Email:    attrs.Email,
		Password: string(hashedPassword),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := CreateToken(&user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("registered user %d", user.ID)
	return &user, token, nil
}

// Login checks the credentials and issues a token.
func (s *AuthService) Login(attrs dto.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ?", attrs.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, "", errors.ErrInvalidPassword
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(attrs.Password)); err != nil {
		return nil, "", errors.ErrInvalidPassword
	}

	token, err := CreateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Profile loads the user behind a token's id.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
