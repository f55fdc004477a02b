package service

import (
	"context"
	"errors"
	"time"

	"recruithub/config"
	"recruithub/internal/core"
	mongoRepo "recruithub/internal/database/mongodb/repository"
	redisRepo "recruithub/internal/database/redis/repository"
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	trace            *telemetry.Trace
	config           *config.Configuration
	userRepo         *mongoRepo.UserRepository
	revokedTokenRepo *redisRepo.RevokedTokenRepository
}

func NewAuthService(
	trace *telemetry.Trace,
	config *config.Configuration,
	userRepo *mongoRepo.UserRepository,
	revokedTokenRepo *redisRepo.RevokedTokenRepository,
) *AuthService {
	return &AuthService{
		trace:            trace,
		config:           config,
		userRepo:         userRepo,
		revokedTokenRepo: revokedTokenRepo,
	}
}

// Login 驗證帳密並簽發 access token
func (s *AuthService) Login(ctx context.Context, loginDto *dto.LoginDto) (*dto.LoginResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.userRepo.GetByEmail(ctx, loginDto.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// 不透露 email 是否存在
			return nil, cErr.Unauthorized("invalid email or password")
		}
		return nil, cErr.DatabaseError("database GetByEmail error")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(loginDto.Password)); err != nil {
		return nil, cErr.Unauthorized("invalid email or password")
	}

	expireMinutes := s.config.JWT.ExpireMinutes
	if expireMinutes <= 0 {
		expireMinutes = 60
	}
	expiresAt := time.Now().UTC().Add(time.Duration(expireMinutes) * time.Minute)

	claims := core.Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			Issuer:    s.config.JWT.Issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.SecretKey))
	if err != nil {
		return nil, cErr.InternalServer("sign token failed")
	}

	return &dto.LoginResponseDto{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewUserResponse(user),
	}, nil
}

// Logout 將 token jti 推入黑名單，TTL = token 剩餘效期
func (s *AuthService) Logout(ctx context.Context, claims *core.Claims) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if err := s.revokedTokenRepo.Revoke(ctx, claims.ID, remaining); err != nil {
		return cErr.DatabaseError("revoke token failed")
	}
	return nil
}

// Me 回傳目前登入者
func (s *AuthService) Me(ctx context.Context, principal core.Principal) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	userID, err := primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		return nil, cErr.Unauthorized("invalid principal")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("user not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
