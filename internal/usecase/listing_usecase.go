package usecase

import (
	"context"
	"fmt"
	"time"

	"rodvers/internal/domain/catalog"
	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/repository"
	"rodvers/internal/domain/seo"
	"rodvers/internal/domain/service"
	"rodvers/pkg/errors"
	"rodvers/pkg/logger"
)

const (
	DefaultFeatureDays = 7
	MaxFeatureDays     = 60
	DefaultBoostHours  = 24
	MaxBoostHours      = 720
)

// Detail fields that must be present at write time, per category. The rest of
// the catalog schema stays advisory.
var requiredDetails = map[string][]string{
	entity.CategoryRealEstate:  {"bedrooms", "bathrooms"},
	entity.CategoryVehicles:    {"brand", "model"},
	entity.CategoryElectronics: {"brand"},
}

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	media       service.MediaUploader
	seoGen      *seo.Generator
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	media service.MediaUploader,
	seoGen *seo.Generator,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		media:       media,
		seoGen:      seoGen,
	}
}

type ListingImageInput struct {
	URL     string
	AssetID string
}

type CreateListingInput struct {
	Name            string
	Description     string
	Address         string
	RegularPrice    float64
	DiscountedPrice float64
	Offer           bool
	Category        string
	SubCategory     string
	Details         map[string]interface{}
	Images          []ListingImageInput
	Seo             *entity.SeoMeta
}

// UpdateListingInput shallow-merges over the stored listing. Nil pointers and
// empty values mean "leave unchanged".
type UpdateListingInput struct {
	Name            string
	Description     string
	Address         string
	RegularPrice    *float64
	DiscountedPrice *float64
	Offer           *bool
	Category        string
	SubCategory     string
	Details         map[string]interface{}
	Images          []ListingImageInput
}

func (uc *ListingUseCase) Create(ctx context.Context, userID string, input CreateListingInput) (*entity.Listing, error) {
	owner, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.BadRequest("Invalid listing owner", err)
	}

	if err := validateListing(input.Category, input.SubCategory, input.Details,
		len(input.Images), input.RegularPrice, input.DiscountedPrice, input.Offer); err != nil {
		return nil, err
	}

	images := make([]entity.ListingImage, len(input.Images))
	for i, img := range input.Images {
		images[i] = entity.ListingImage{URL: img.URL, AssetID: img.AssetID}
	}

	seoMeta := uc.seoGen.Generate(input.Category, input.SubCategory, input.Details, input.Address)
	if input.Seo != nil {
		seoMeta = *input.Seo
	}

	listing := &entity.Listing{
		Name:            input.Name,
		Description:     input.Description,
		Address:         input.Address,
		RegularPrice:    input.RegularPrice,
		DiscountedPrice: input.DiscountedPrice,
		Offer:           input.Offer,
		Category:        input.Category,
		SubCategory:     input.SubCategory,
		Details:         input.Details,
		Images:          images,
		UserRef:         owner.ID,
		Seo:             seoMeta,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Get returns a listing and bumps its view counter. The counter update is
// best-effort: a failed increment never fails the read.
func (uc *ListingUseCase) Get(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.listingRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("failed to increment views", "listing", id, "err", err)
	} else {
		listing.Views++
	}
	return listing, nil
}

func (uc *ListingUseCase) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.List(ctx, filter)
}

func (uc *ListingUseCase) Update(ctx context.Context, id, userID string, input UpdateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.UserRef.Hex() != userID {
		return nil, errors.Forbidden("You can only update your own listing", nil)
	}

	seoStale := false
	if input.Name != "" {
		listing.Name = input.Name
	}
	if input.Description != "" {
		listing.Description = input.Description
	}
	if input.Address != "" && input.Address != listing.Address {
		listing.Address = input.Address
		seoStale = true
	}
	if input.Category != "" && input.Category != listing.Category {
		listing.Category = input.Category
		seoStale = true
	}
	if input.SubCategory != "" && input.SubCategory != listing.SubCategory {
		listing.SubCategory = input.SubCategory
		seoStale = true
	}
	if input.Details != nil {
		listing.Details = input.Details
		seoStale = true
	}
	if input.RegularPrice != nil {
		listing.RegularPrice = *input.RegularPrice
	}
	if input.DiscountedPrice != nil {
		listing.DiscountedPrice = *input.DiscountedPrice
	}
	if input.Offer != nil {
		listing.Offer = *input.Offer
	}
	if input.Images != nil {
		images := make([]entity.ListingImage, len(input.Images))
		for i, img := range input.Images {
			images[i] = entity.ListingImage{URL: img.URL, AssetID: img.AssetID}
		}
		listing.Images = images
	}

	// Invariants are re-checked on the merged values, not the patch.
	if err := validateListing(listing.Category, listing.SubCategory, listing.Details,
		len(listing.Images), listing.RegularPrice, listing.DiscountedPrice, listing.Offer); err != nil {
		return nil, err
	}

	if seoStale {
		listing.Seo = uc.seoGen.Generate(listing.Category, listing.SubCategory, listing.Details, listing.Address)
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete removes a listing and best-effort deletes its media assets. Media
// cleanup failures are logged and swallowed; they never mask the outcome.
func (uc *ListingUseCase) Delete(ctx context.Context, id, userID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.UserRef.Hex() != userID {
		return errors.Forbidden("You can only delete your own listing", nil)
	}

	for _, img := range listing.Images {
		if img.AssetID == "" {
			continue
		}
		if err := uc.media.Delete(ctx, img.AssetID); err != nil {
			logger.Warn("failed to delete media asset", "assetId", img.AssetID, "err", err)
		}
	}

	return uc.listingRepo.Delete(ctx, id)
}

// Promote marks a listing featured for the given number of days (default 7).
// Webhook callers bypass the ownership check; they are authorized upstream by
// the shared secret.
func (uc *ListingUseCase) Promote(ctx context.Context, id, actorID string, viaWebhook bool, days int) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viaWebhook && listing.UserRef.Hex() != actorID {
		return nil, errors.Forbidden("You can only promote your own listing", nil)
	}

	if days <= 0 {
		days = DefaultFeatureDays
	}
	if days > MaxFeatureDays {
		days = MaxFeatureDays
	}

	until := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	listing.IsFeatured = true
	listing.FeaturedUntil = &until

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Boost is the short-window variant of Promote, measured in hours.
func (uc *ListingUseCase) Boost(ctx context.Context, id, actorID string, viaWebhook bool, hours int) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viaWebhook && listing.UserRef.Hex() != actorID {
		return nil, errors.Forbidden("You can only boost your own listing", nil)
	}

	if hours <= 0 {
		hours = DefaultBoostHours
	}
	if hours > MaxBoostHours {
		hours = MaxBoostHours
	}

	until := time.Now().Add(time.Duration(hours) * time.Hour)
	listing.Boosted = true
	listing.BoostedUntil = &until

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func validateListing(category, subCategory string, details map[string]interface{}, imageCount int, regularPrice, discountedPrice float64, offer bool) error {
	var problems []map[string]string
	addProblem := func(field, message string) {
		problems = append(problems, map[string]string{"field": field, "message": message})
	}

	if !entity.ValidCategory(category) {
		addProblem("category", "Invalid category selected")
	} else if !catalog.ValidSubCategory(category, subCategory) {
		addProblem("subCategory", fmt.Sprintf("%q is not a valid subcategory of %q", subCategory, category))
	}

	if imageCount < entity.MinImages {
		addProblem("images", "At least 1 image is required")
	}
	if imageCount > entity.MaxImages {
		addProblem("images", fmt.Sprintf("Maximum %d images allowed", entity.MaxImages))
	}

	if regularPrice <= 0 {
		addProblem("regularPrice", "Regular price must be a positive number")
	}
	if offer && discountedPrice >= regularPrice {
		addProblem("discountedPrice", "Discounted price must be less than regular price")
	}

	if entity.ValidCategory(category) {
		for _, field := range requiredDetails[category] {
			if _, ok := details[field]; !ok {
				addProblem("details."+field, field+" is required for "+category+" listings")
			}
		}
	}

	if len(problems) > 0 {
		return errors.Validation("Listing validation failed", problems)
	}
	return nil
}
