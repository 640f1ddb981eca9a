package repository

import (
	"context"

	"rodvers/internal/domain/entity"
)

// ListingFilter is the bag of optional query parameters accepted by the list
// endpoint. Pointer booleans are tri-state: nil means "don't care", which must
// never collapse to false (an unchecked checkbox must not hide both values).
type ListingFilter struct {
	SearchTerm  string
	Category    string
	SubCategory string
	MinPrice    float64
	MaxPrice    float64
	Offer       *bool
	Furnished   *bool
	Parking     *bool
	Type        string // "rent" | "sale" | ""
	Featured    bool

	Sort  string // allow-listed in the composer
	Order string // "asc" | "desc"

	Limit      int
	StartIndex int
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context, filter ListingFilter) ([]*entity.Listing, int64, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}
