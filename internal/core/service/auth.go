package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
)

type AuthService struct {
	users  port.UserTxStore
	secret []byte
}

func NewAuthService(users port.UserTxStore, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

func (s *AuthService) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	var created domain.User
	err = s.users.WithinTx(ctx, func(users port.UserStore) error {
		if _, err := users.GetUserByEmail(ctx, email); err == nil {
			return domain.ErrEmailTaken
		}

		user, err := users.CreateUser(ctx, domain.User{
			ID:           uuid.New(),
			Email:        email,
			Name:         name,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}

		created = user
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrBadCredentials
	}

	if !s.CheckPasswordHash(password, user.PasswordHash) {
		return "", domain.ErrBadCredentials
	}

	return s.GenerateToken(user.ID)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour * 24).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return uuid.Nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		idStr, ok := claims["sub"].(string)
		if !ok {
			return uuid.Nil, errors.New("invalid token claims")
		}
		return uuid.Parse(idStr)
	}

	return uuid.Nil, errors.New("invalid token")
}
