// File: internal/property/mongo_repository.go
package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AymenS02/united-real-estate/internal/platform/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDocument is the stored shape: the listing fields plus the ObjectID key.
type mongoDocument struct {
	ID      primitive.ObjectID `bson:"_id"`
	Listing `bson:",inline"`
}

func (d *mongoDocument) toListing() Listing {
	l := d.Listing
	l.ID = d.ID.Hex()
	l.normalizeSequences()
	return l
}

type mongoRepository struct {
	gw         *gateway.Gateway[*mongo.Client]
	database   string
	collection string
}

// NewMongoRepository creates a listing repository backed by a Mongo collection.
func NewMongoRepository(gw *gateway.Gateway[*mongo.Client], database, collection string) Repository {
	return &mongoRepository{gw: gw, database: database, collection: collection}
}

func (r *mongoRepository) coll(ctx context.Context) (*mongo.Collection, error) {
	client, err := r.gw.EnsureConnected(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(r.database).Collection(r.collection), nil
}

// objectID fails with a cast error for malformed ids; callers surface it as a server error.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("Cast to ObjectId failed for value %q at path \"_id\": %w", id, err)
	}
	return oid, nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]Listing, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer cur.Close(ctx)

	listings := []Listing{}
	for cur.Next(ctx) {
		var doc mongoDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		listings = append(listings, doc.toListing())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return listings, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Listing, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	var doc mongoDocument
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property %s: %w", id, err)
	}
	l := doc.toListing()
	return &l, nil
}

func (r *mongoRepository) Create(ctx context.Context, l *Listing) error {
	if err := ValidateSchema(l); err != nil {
		return err
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	doc := mongoDocument{ID: primitive.NewObjectID(), Listing: *l}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	l.ID = doc.ID.Hex()
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	return nil
}

func (r *mongoRepository) UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) (*Listing, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": updatedAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoDocument
	if err := coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to update property %s: %w", id, err)
	}
	l := doc.toListing()
	return &l, nil
}

func (r *mongoRepository) Migrate(ctx context.Context) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "listingId", Value: 1}}, Options: options.Index().SetName("listingId_1")},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("createdAt_-1")},
	})
	if err != nil {
		return fmt.Errorf("failed to create property indexes: %w", err)
	}
	return nil
}
