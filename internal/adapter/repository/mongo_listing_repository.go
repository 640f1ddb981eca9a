package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/repository"
	"rodvers/pkg/errors"
)

type mongoListingRepository struct {
	coll *mongo.Collection
}

func NewMongoListingRepository(db *mongo.Database) repository.ListingRepository {
	return &mongoListingRepository{
		coll: db.Collection("listings"),
	}
}

func (r *mongoListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now
	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return errors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *mongoListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}

	var listing entity.Listing
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Listing", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get listing", err)
	}
	return &listing, nil
}

func (r *mongoListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, int64, error) {
	query, sort, limit, skip := composeListingQuery(filter, time.Now())

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count listings", err)
	}

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list listings", err)
	}
	defer cursor.Close(ctx)

	listings := []*entity.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, errors.Internal("Failed to decode listings", err)
	}
	return listings, total, nil
}

func (r *mongoListingRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.BadRequest("Invalid user id", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userRef": oid}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list user listings", err)
	}
	defer cursor.Close(ctx)

	listings := []*entity.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, errors.Internal("Failed to decode user listings", err)
	}
	return listings, nil
}

func (r *mongoListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": listing.ID}, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Listing", nil)
	}
	return nil
}

func (r *mongoListingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.NotFound("Listing", err)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Listing", nil)
	}
	return nil
}

func (r *mongoListingRepository) IncrementViews(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.NotFound("Listing", err)
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return errors.Internal("Failed to increment listing views", err)
	}
	return nil
}
