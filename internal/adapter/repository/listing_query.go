package repository

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rodvers/internal/domain/repository"
	"rodvers/pkg/utils"
)

// Sort keys a caller may request. Anything else falls back to newest-first;
// caller input is never interpolated into the query.
var allowedSortFields = map[string]string{
	"createdAt":    "createdAt",
	"regularPrice": "regularPrice",
	"views":        "views",
}

// composeListingQuery translates a ListingFilter into a bson filter plus a
// sort and clamped pagination directive.
//
// Filter policy: an absent boolean-ish filter means "match either value", not
// "false". Subcategory only narrows the query when a category is present.
func composeListingQuery(filter repository.ListingFilter, now time.Time) (bson.M, bson.D, int64, int64) {
	query := bson.M{}

	if filter.SearchTerm != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.SearchTerm), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"address": pattern},
		}
	}

	if filter.Category != "" {
		query["category"] = filter.Category
		if filter.SubCategory != "" {
			query["subCategory"] = filter.SubCategory
		}
	}

	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["regularPrice"] = price
	}

	if filter.Offer != nil {
		query["offer"] = *filter.Offer
	}

	if filter.Type != "" {
		query["details.type"] = filter.Type
	}

	if filter.Furnished != nil {
		if *filter.Furnished {
			query["details.furnished"] = bson.M{"$in": bson.A{"Semi-furnished", "Fully furnished"}}
		} else {
			query["details.furnished"] = "Unfurnished"
		}
	}

	if filter.Parking != nil {
		if *filter.Parking {
			query["details.parking"] = bson.M{"$gt": 0}
		} else {
			query["details.parking"] = bson.M{"$not": bson.M{"$gt": 0}}
		}
	}

	if filter.Featured {
		// Promotion expiry is evaluated at read time; the stored flag alone
		// is not trusted.
		query["isFeatured"] = true
		query["featuredUntil"] = bson.M{"$gt": now}
	}

	sortField, ok := allowedSortFields[filter.Sort]
	if !ok {
		sortField = "createdAt"
	}
	order := -1
	if filter.Order == "asc" {
		order = 1
	}
	sort := bson.D{{Key: sortField, Value: order}}

	limit := int64(utils.ClampLimit(filter.Limit))
	skip := int64(utils.ClampStartIndex(filter.StartIndex))

	return query, sort, limit, skip
}
