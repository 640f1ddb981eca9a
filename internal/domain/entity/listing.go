package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryRealEstate  = "Real Estate"
	CategoryVehicles    = "Vehicles"
	CategoryElectronics = "Electronics"
)

const (
	MinImages = 1
	MaxImages = 6
)

// ListingImage pairs the public URL with the media host's asset identifier,
// which is needed later for deletion.
type ListingImage struct {
	URL     string `json:"url" bson:"url"`
	AssetID string `json:"assetId" bson:"assetId"`
}

type SeoMeta struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Keywords    []string `json:"keywords" bson:"keywords"`
	Canonical   string   `json:"canonical" bson:"canonical"`
	Slug        string   `json:"slug" bson:"slug"`
}

type Listing struct {
	ID              primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Name            string                 `json:"name" bson:"name"`
	Description     string                 `json:"description" bson:"description"`
	Address         string                 `json:"address" bson:"address"`
	RegularPrice    float64                `json:"regularPrice" bson:"regularPrice"`
	DiscountedPrice float64                `json:"discountedPrice,omitempty" bson:"discountedPrice,omitempty"`
	Offer           bool                   `json:"offer" bson:"offer"`
	Category        string                 `json:"category" bson:"category"`
	SubCategory     string                 `json:"subCategory" bson:"subCategory"`
	Details         map[string]interface{} `json:"details" bson:"details"`
	Images          []ListingImage         `json:"images" bson:"images"`
	UserRef         primitive.ObjectID     `json:"userRef" bson:"userRef"`

	IsFeatured    bool       `json:"isFeatured" bson:"isFeatured"`
	FeaturedUntil *time.Time `json:"featuredUntil,omitempty" bson:"featuredUntil,omitempty"`
	Boosted       bool       `json:"boosted" bson:"boosted"`
	BoostedUntil  *time.Time `json:"boostedUntil,omitempty" bson:"boostedUntil,omitempty"`

	Views     int64     `json:"views" bson:"views"`
	Seo       SeoMeta   `json:"seo" bson:"seo"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FeaturedActive reports whether the listing is featured right now. The flag
// alone is not enough: the stored window must not have expired.
func (l *Listing) FeaturedActive(now time.Time) bool {
	return l.IsFeatured && l.FeaturedUntil != nil && l.FeaturedUntil.After(now)
}

func (l *Listing) BoostedActive(now time.Time) bool {
	return l.Boosted && l.BoostedUntil != nil && l.BoostedUntil.After(now)
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryRealEstate, CategoryVehicles, CategoryElectronics:
		return true
	}
	return false
}
