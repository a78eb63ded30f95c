package usecase

import (
	"context"
	"errors"

	"jobboard/internal/domain/user"
	jwtpkg "jobboard/internal/pkg/jwt"
	"jobboard/internal/usecase/auth"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User   user.User
	Role   string
	Tokens TokenPair
}

// AuthUsecase wraps credential handling with token issuance. The role is
// read from the stored profile, never from the token the client presents.
type AuthUsecase struct {
	svc    *auth.Service
	users  user.Repository
	tokens jwtpkg.Service
}

func NewAuthUsecase(svc *auth.Service, users user.Repository, tokens jwtpkg.Service) *AuthUsecase {
	return &AuthUsecase{svc: svc, users: users, tokens: tokens}
}

func (uc *AuthUsecase) Register(ctx context.Context, in auth.RegisterInput) (AuthResult, error) {
	u, err := uc.svc.Register(ctx, in)
	if err != nil {
		return AuthResult{}, err
	}
	return uc.issue(ctx, u)
}

func (uc *AuthUsecase) Login(ctx context.Context, in auth.LoginInput) (AuthResult, error) {
	u, err := uc.svc.Login(ctx, in)
	if err != nil {
		return AuthResult{}, err
	}
	return uc.issue(ctx, u)
}

func (uc *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	claims, err := uc.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwtpkg.ErrTokenExpired) {
			return AuthResult{}, ErrRefreshTokenExpired
		}
		return AuthResult{}, ErrInvalidRefreshToken
	}
	if !uc.tokens.IsRefreshToken(claims) {
		return AuthResult{}, ErrInvalidRefreshToken
	}

	u, err := uc.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return AuthResult{}, ErrInvalidRefreshToken
		}
		return AuthResult{}, ErrInternal
	}
	u.PasswordHash = ""

	return uc.issue(ctx, u)
}

func (uc *AuthUsecase) issue(ctx context.Context, u user.User) (AuthResult, error) {
	profile, err := uc.users.GetProfileByUserID(ctx, u.ID)
	if err != nil {
		return AuthResult{}, ErrInternal
	}

	access, err := uc.tokens.GenerateAccessToken(u.ID, u.Email, profile.Role)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	refresh, err := uc.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return AuthResult{}, ErrInternal
	}

	return AuthResult{
		User: u,
		Role: profile.Role,
		Tokens: TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}
