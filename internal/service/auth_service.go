package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-task-api/internal/model"
	"go-task-api/internal/store"
	"go-task-api/pkg/apierror"
)

// AuthService owns the credential lifecycle: registration with bcrypt
// hashing, login with token issuance, and token verification. The signing
// secret is injected here once and never read from anywhere else.
type AuthService struct {
	users      store.UserStore
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(jwtSecret string, tokenTTL time.Duration, bcryptCost int, users store.UserStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &AuthService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username string, password string) (model.PublicUser, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return model.PublicUser{}, apierror.BadRequest("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return model.PublicUser{}, err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.CreateUser(ctx, user)
	if errors.Is(err, store.ErrConflict) {
		return model.PublicUser{}, apierror.Conflict("username already exists")
	}
	if err != nil {
		return model.PublicUser{}, err
	}

	return created.Public(), nil
}

func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return "", apierror.Unauthorized("invalid credentials")
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apierror.Unauthorized("invalid credentials")
	}

	return s.issueToken(user.ID)
}

// VerifyToken checks signature, structure and expiry. Every failure mode
// collapses into the same Unauthorized error; callers cannot tell a forged
// token from an expired one.
func (s *AuthService) VerifyToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apierror.Unauthorized("invalid or expired token")
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Unauthorized("invalid token claims")
	}

	claims := &model.AuthClaims{}
	claims.UserID, _ = claimsMap["sub"].(string)
	claims.TokenID, _ = claimsMap["jti"].(string)

	if claims.UserID == "" {
		return nil, apierror.Unauthorized("invalid token subject")
	}

	return claims, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (model.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.PublicUser{}, apierror.NotFound("user not found")
	}
	if err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
