package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/repository/specification"
	"parish-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	jwtSecret        string
	tokenExpiryHours int
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenExpiryHours int) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		jwtSecret:        jwtSecret,
		tokenExpiryHours: tokenExpiryHours,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	// Same message for unknown user and bad password.
	if user == nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(time.Duration(s.tokenExpiryHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User: dto.UserResponse{
			Id:       user.Id,
			Username: user.Username,
			Role:     string(user.Role),
		},
	}, nil
}
