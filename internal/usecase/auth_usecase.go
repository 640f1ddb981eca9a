package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/repository"
	"rodvers/pkg/errors"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenManager
	hasher   PasswordHasher
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenManager, hasher PasswordHasher) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
	}
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type GoogleInput struct {
	Name  string
	Email string
	Photo string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use", nil)
	}
	if existing, err := uc.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, errors.Conflict("Username already in use", nil)
	}

	hashed, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Avatar:   entity.DefaultAvatarURL,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// The unique index catches races the pre-checks missed.
		return nil, err
	}

	return uc.issueToken(user)
}

// Signin fails with the same generic rejection for an unknown email and a bad
// password so account existence does not leak.
func (uc *AuthUseCase) Signin(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}
	if !uc.hasher.Compare(user.Password, password) {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}
	return uc.issueToken(user)
}

// Google bridges the OAuth flow: an existing user (by email) signs in,
// anyone else is provisioned with a generated username and random password.
func (uc *AuthUseCase) Google(ctx context.Context, input GoogleInput) (*AuthResult, error) {
	if user, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && user != nil {
		return uc.issueToken(user)
	}

	password, err := randomHex(16)
	if err != nil {
		return nil, errors.Internal("Failed to generate password", err)
	}
	hashed, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	suffix, err := randomHex(4)
	if err != nil {
		return nil, errors.Internal("Failed to generate username", err)
	}
	username := strings.ToLower(strings.ReplaceAll(input.Name, " ", "")) + suffix

	avatar := input.Photo
	if avatar == "" {
		avatar = entity.DefaultAvatarURL
	}

	user := &entity.User{
		Username: username,
		Email:    input.Email,
		Password: hashed,
		Avatar:   avatar,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

func (uc *AuthUseCase) issueToken(user *entity.User) (*AuthResult, error) {
	token, err := uc.tokens.Sign(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return nil, errors.Internal("Failed to sign token", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
