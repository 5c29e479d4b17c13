package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"studio-api/internal/jwt"
	"studio-api/internal/model"
	"studio-api/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrSamePassword       = errors.New("new password must differ from the current one")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

type AuthService interface {
	RegisterUser(ctx context.Context, email, password, name string) (*model.User, string, string, error)
	LoginUser(ctx context.Context, email, password string) (*model.User, string, string, error)
	LogoutUser(ctx context.Context, claims map[string]interface{}) error
	GetUserProfile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, name *string, avatarURL *string) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

type authService struct {
	userRepo  repository.UserRepository
	blacklist jwt.Blacklist
}

func NewAuthService(userRepo repository.UserRepository, blacklist jwt.Blacklist) AuthService {
	return &authService{
		userRepo:  userRepo,
		blacklist: blacklist,
	}
}

func (s *authService) RegisterUser(ctx context.Context, email, password, name string) (*model.User, string, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, "", "", err
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	user.ID = newID

	accessToken, refreshToken, err := jwt.GenerateTokens(user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) LoginUser(ctx context.Context, email, password string) (*model.User, string, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", "", ErrAccountDisabled
	}

	accessToken, refreshToken, err := jwt.GenerateTokens(user)
	if err != nil {
		return nil, "", "", err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", "", err
	}
	user.LastLogin = &now

	return user, accessToken, refreshToken, nil
}

// LogoutUser blacklists the access token by its jti for the remainder of
// its lifetime.
func (s *authService) LogoutUser(ctx context.Context, claims map[string]interface{}) error {
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return ErrTokenInvalid
	}

	return s.blacklist.Add(ctx, jti, jwt.ClaimExpiry(claims))
}

func (s *authService) GetUserProfile(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, name *string, avatarURL *string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	if currentPassword == newPassword {
		return ErrSamePassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, string(hashedPassword))
}
