package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodvers/internal/domain/entity"
	"rodvers/pkg/errors"
)

func newAuthFixture() (*AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthUseCase(repo, fakeTokens{}, fakeHasher{}), repo
}

func TestSignup(t *testing.T) {
	uc, repo := newAuthFixture()

	result, err := uc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret99",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, entity.DefaultAvatarURL, result.User.Avatar)
	assert.Equal(t, "hashed:s3cret99", result.User.Password)

	stored, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc, repo := newAuthFixture()
	repo.seed("alice", "alice@example.com")

	_, err := uc.Signup(context.Background(), SignupInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "s3cret99",
	})

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestSignupDuplicateUsername(t *testing.T) {
	uc, repo := newAuthFixture()
	repo.seed("alice", "alice@example.com")

	_, err := uc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "s3cret99",
	})

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestSigninRejectionsAreIndistinguishable(t *testing.T) {
	uc, repo := newAuthFixture()
	repo.seed("alice", "alice@example.com")

	_, unknownErr := uc.Signin(context.Background(), "nobody@example.com", "whatever")
	_, badPassErr := uc.Signin(context.Background(), "alice@example.com", "wrong")

	assert.True(t, errors.Is(unknownErr, "UNAUTHORIZED"))
	assert.True(t, errors.Is(badPassErr, "UNAUTHORIZED"))
	assert.Equal(t, unknownErr.Error(), badPassErr.Error())
}

func TestSigninSuccess(t *testing.T) {
	uc, repo := newAuthFixture()
	user := repo.seed("alice", "alice@example.com")

	result, err := uc.Signin(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)
}

func TestGoogleSignsInExistingUser(t *testing.T) {
	uc, repo := newAuthFixture()
	user := repo.seed("alice", "alice@example.com")

	result, err := uc.Google(context.Background(), GoogleInput{
		Name:  "Alice Smith",
		Email: "alice@example.com",
		Photo: "https://photos.example.com/alice.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Len(t, repo.users, 1)
}

func TestGoogleProvisionsNewUser(t *testing.T) {
	uc, repo := newAuthFixture()

	result, err := uc.Google(context.Background(), GoogleInput{
		Name:  "Bob Otim",
		Email: "bob@example.com",
		Photo: "https://photos.example.com/bob.jpg",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.User.Username, "bobotim"))
	assert.Greater(t, len(result.User.Username), len("bobotim"))
	assert.Equal(t, "https://photos.example.com/bob.jpg", result.User.Avatar)
	assert.Len(t, repo.users, 1)
}

func TestGoogleDefaultsAvatar(t *testing.T) {
	uc, _ := newAuthFixture()

	result, err := uc.Google(context.Background(), GoogleInput{
		Name:  "Carol A",
		Email: "carol@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAvatarURL, result.User.Avatar)
}
