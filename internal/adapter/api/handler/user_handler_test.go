package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rodvers/internal/adapter/api"
	"rodvers/internal/adapter/api/middleware"
	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/repository"
	"rodvers/internal/usecase"
	"rodvers/pkg/errors"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type memListingRepo struct{}

func (memListingRepo) Create(context.Context, *entity.Listing) error { return nil }
func (memListingRepo) GetByID(context.Context, string) (*entity.Listing, error) {
	return nil, errors.NotFound("Listing", nil)
}
func (memListingRepo) List(context.Context, repository.ListingFilter) ([]*entity.Listing, int64, error) {
	return nil, 0, nil
}
func (memListingRepo) ListByUser(context.Context, string) ([]*entity.Listing, error) {
	return nil, nil
}
func (memListingRepo) Update(context.Context, *entity.Listing) error { return nil }
func (memListingRepo) Delete(context.Context, string) error          { return nil }
func (memListingRepo) IncrementViews(context.Context, string) error  { return nil }

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hashed, password string) bool { return hashed == "hashed:"+password }

func newUserHandlerFixture(media *countingMedia) (*UserHandler, *memUserRepo) {
	users := &memUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(users, memListingRepo{}, media, plainHasher{})
	return NewUserHandler(uc, media), users
}

func newUpdateUserContext(t *testing.T, targetID, authUserID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()
	body, contentType := multipartImages(t, "avatar", 1)
	req := httptest.NewRequest(http.MethodPatch, "/api/user/update/"+targetID, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(targetID)
	c.Set(middleware.ContextUserID, authUserID)
	return c, rec
}

func TestUpdateUserStrangerRejectedBeforeAvatarUpload(t *testing.T) {
	media := &countingMedia{}
	h, users := newUserHandlerFixture(media)
	alice := &entity.User{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@example.com"}
	require.NoError(t, users.Create(context.Background(), alice))

	c, rec := newUpdateUserContext(t, alice.ID.Hex(), primitive.NewObjectID().Hex())

	require.NoError(t, h.UpdateUser(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, media.uploads, "a rejected update must not reach the media host")
	assert.Empty(t, media.deleted)
}

func TestUpdateUserCompensatesAvatarOnFailure(t *testing.T) {
	media := &countingMedia{}
	h, _ := newUserHandlerFixture(media)

	// Self-update of an account that does not exist: the avatar goes up
	// first, then the usecase fails with NotFound.
	ghost := primitive.NewObjectID().Hex()
	c, rec := newUpdateUserContext(t, ghost, ghost)

	require.NoError(t, h.UpdateUser(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, media.uploads)
	assert.Equal(t, []string{"listings_app_avatars/asset-1"}, media.deleted,
		"an avatar uploaded for a failed update must be destroyed")
}

func TestUpdateUserUploadsAvatarOnSuccess(t *testing.T) {
	media := &countingMedia{}
	h, users := newUserHandlerFixture(media)
	alice := &entity.User{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@example.com"}
	require.NoError(t, users.Create(context.Background(), alice))

	c, rec := newUpdateUserContext(t, alice.ID.Hex(), alice.ID.Hex())

	require.NoError(t, h.UpdateUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, media.uploads)
	assert.Empty(t, media.deleted)
	assert.Equal(t, "https://media.example.com/listings_app_avatars/asset-1", alice.Avatar)
}
