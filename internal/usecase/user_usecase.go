package usecase

import (
	"context"

	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/repository"
	"rodvers/internal/domain/service"
	"rodvers/pkg/errors"
	"rodvers/pkg/logger"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	media       service.MediaUploader
	hasher      PasswordHasher
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	media service.MediaUploader,
	hasher PasswordHasher,
) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		media:       media,
		hasher:      hasher,
	}
}

type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Avatar   string
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// Update applies a profile change. Only the authenticated user may touch
// their own record; the password is rehashed when supplied.
func (uc *UserUseCase) Update(ctx context.Context, targetID, authUserID string, input UpdateUserInput) (*entity.User, error) {
	if targetID != authUserID {
		return nil, errors.Forbidden("You can only update your own profile", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hashed, err := uc.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Internal("Failed to hash password", err)
		}
		user.Password = hashed
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAvatar replaces the avatar with an already-uploaded media URL.
func (uc *UserUseCase) UpdateAvatar(ctx context.Context, authUserID, avatarURL string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, authUserID)
	if err != nil {
		return nil, err
	}
	user.Avatar = avatarURL
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account. The user's listings and their media assets are
// cleaned up best-effort first; cleanup failures never block the deletion.
func (uc *UserUseCase) Delete(ctx context.Context, targetID, authUserID string) error {
	if targetID != authUserID {
		return errors.Forbidden("You can only delete your own account", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	listings, err := uc.listingRepo.ListByUser(ctx, targetID)
	if err != nil {
		logger.Warn("failed to enumerate listings for account deletion", "user", targetID, "err", err)
		listings = nil
	}
	for _, listing := range listings {
		for _, img := range listing.Images {
			if img.AssetID == "" {
				continue
			}
			if err := uc.media.Delete(ctx, img.AssetID); err != nil {
				logger.Warn("failed to delete media asset", "assetId", img.AssetID, "err", err)
			}
		}
		if err := uc.listingRepo.Delete(ctx, listing.ID.Hex()); err != nil {
			logger.Warn("failed to delete listing during account deletion", "listing", listing.ID.Hex(), "err", err)
		}
	}

	return uc.userRepo.Delete(ctx, targetID)
}
