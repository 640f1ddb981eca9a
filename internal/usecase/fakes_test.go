package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/repository"
	"rodvers/internal/domain/service"
	"rodvers/pkg/errors"
)

// In-memory fakes shared by the usecase tests. They model just enough of the
// Mongo repositories to exercise the business rules.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) seed(username, email string) *entity.User {
	user := &entity.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		Password: "hashed:secret",
		Avatar:   entity.DefaultAvatarURL,
	}
	r.users[user.ID.Hex()] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return errors.Conflict("Username or email already in use", nil)
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

type fakeListingRepo struct {
	listings       map[string]*entity.Listing
	incrementFails bool
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*entity.Listing{}}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *entity.Listing) error {
	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}
	stored := *listing
	r.listings[listing.ID.Hex()] = &stored
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*entity.Listing, error) {
	if listing, ok := r.listings[id]; ok {
		copied := *listing
		return &copied, nil
	}
	return nil, errors.NotFound("Listing", nil)
}

func (r *fakeListingRepo) List(_ context.Context, _ repository.ListingFilter) ([]*entity.Listing, int64, error) {
	out := make([]*entity.Listing, 0, len(r.listings))
	for _, listing := range r.listings {
		copied := *listing
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) ListByUser(_ context.Context, userID string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, listing := range r.listings {
		if listing.UserRef.Hex() == userID {
			copied := *listing
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Update(_ context.Context, listing *entity.Listing) error {
	if _, ok := r.listings[listing.ID.Hex()]; !ok {
		return errors.NotFound("Listing", nil)
	}
	stored := *listing
	r.listings[listing.ID.Hex()] = &stored
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(_ context.Context, id string) error {
	if r.incrementFails {
		return fmt.Errorf("increment unavailable")
	}
	listing, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.Views++
	return nil
}

type fakeMedia struct {
	uploads int
	deleted []string
	fail    bool
}

func (m *fakeMedia) Upload(_ context.Context, _ io.Reader, folder, _ string) (*service.UploadResult, error) {
	if m.fail {
		return nil, fmt.Errorf("media host unavailable")
	}
	m.uploads++
	id := fmt.Sprintf("%s/asset-%d", folder, m.uploads)
	return &service.UploadResult{URL: "https://media.example.com/" + id, AssetID: id}, nil
}

func (m *fakeMedia) Delete(_ context.Context, assetID string) error {
	if m.fail {
		return fmt.Errorf("media host unavailable")
	}
	m.deleted = append(m.deleted, assetID)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hashed, password string) bool { return hashed == "hashed:"+password }

type fakeTokens struct{}

func (fakeTokens) Sign(userID string, admin bool) (string, error) {
	return fmt.Sprintf("token:%s:%t", userID, admin), nil
}

func (fakeTokens) Verify(token string) (string, bool, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return "", false, fmt.Errorf("malformed token")
	}
	return parts[1], parts[2] == "true", nil
}
