package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marketplace/internal/auth"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/repository"
)

// SignInResult is a successful sign-in. Permissions is only set for admin sign-ins.
type SignInResult struct {
	Profile     *UserProfile
	Token       string
	Permissions []PermissionGroup
}

// AuthService handles authentication operations.
type AuthService interface {
	SignIn(ctx context.Context, in SignInInput, admin bool) (*SignInResult, error)
	SignOut(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	users       repository.UserRepository
	jwtService  *auth.JWTService
	permissions PermissionService
	revoked     auth.RevocationList
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	jwtService *auth.JWTService,
	permissions PermissionService,
	revoked auth.RevocationList,
) AuthService {
	return &authService{
		users:       users,
		jwtService:  jwtService,
		permissions: permissions,
		revoked:     revoked,
	}
}

// SignIn checks the password of the account whose email or access code matches
// in.Email and issues a user token.
func (s *authService) SignIn(ctx context.Context, in SignInInput, admin bool) (*SignInResult, error) {
	user, err := s.users.FindByLogin(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateUserToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	result := &SignInResult{Profile: &UserProfile{User: user}, Token: token}

	if admin {
		groups, err := s.permissions.Aggregate(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		result.Permissions = groups
		return result, nil
	}

	if result.Profile.FollowNumber, err = s.users.CountFollowing(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}
	if result.Profile.FollowedNumber, err = s.users.CountFollowers(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}
	return result, nil
}

// SignOut revokes the token the claims came from for the rest of its lifetime.
func (s *authService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.Remaining(time.Now())); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
