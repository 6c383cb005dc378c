package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// MongoStoryRepository persists farmer stories.
type MongoStoryRepository struct {
	coll *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *MongoStoryRepository {
	return &MongoStoryRepository{coll: db.Collection(storyCollection)}
}

type storyDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID       primitive.ObjectID `bson:"owner_id,omitempty"`
	OwnerName     string             `bson:"owner_name"`
	OwnerPhotoURL string             `bson:"owner_photo_url,omitempty"`
	Title         string             `bson:"title"`
	Body          string             `bson:"body"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// newStoryDoc converts a domain story for insertion. An empty OwnerID is
// legal: admin-published stories carry no owner.
func newStoryDoc(s *domain.Story) (storyDoc, error) {
	doc := storyDoc{
		OwnerName:     s.OwnerName,
		OwnerPhotoURL: s.OwnerPhotoURL,
		Title:         s.Title,
		Body:          s.Body,
	}
	if s.OwnerID != "" {
		oid, err := primitive.ObjectIDFromHex(s.OwnerID)
		if err != nil {
			return storyDoc{}, domain.ErrUserNotFound
		}
		doc.OwnerID = oid
	}
	return doc, nil
}

func (d *storyDoc) toDomain() *domain.Story {
	out := &domain.Story{
		ID:            d.ID.Hex(),
		OwnerName:     d.OwnerName,
		OwnerPhotoURL: d.OwnerPhotoURL,
		Title:         d.Title,
		Body:          d.Body,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if !d.OwnerID.IsZero() {
		out.OwnerID = d.OwnerID.Hex()
	}
	return out
}

func (r *MongoStoryRepository) ListAll(ctx context.Context, limit int64) ([]*domain.Story, error) {
	return r.list(ctx, bson.M{}, limit)
}

func (r *MongoStoryRepository) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*domain.Story, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.list(ctx, bson.M{"owner_id": oid}, limit)
}

func (r *MongoStoryRepository) Create(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	doc, err := newStoryDoc(s)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert story: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// Update patches a story. A non-empty ownerID narrows the match to that owner,
// so someone else's story comes back as not found rather than forbidden.
func (r *MongoStoryRepository) Update(ctx context.Context, id, ownerID string, patch ports.StoryPatch) (*domain.Story, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStoryNotFound
	}

	filter := bson.M{"_id": oid}
	if ownerID != "" {
		owner, err := primitive.ObjectIDFromHex(ownerID)
		if err != nil {
			return nil, domain.ErrStoryNotFound
		}
		filter["owner_id"] = owner
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Body != nil {
		set["body"] = *patch.Body
	}
	if patch.OwnerPhotoURL != nil {
		set["owner_photo_url"] = *patch.OwnerPhotoURL
	}

	var doc storyDoc
	err = r.coll.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("update story: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoStoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStoryNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}

func (r *MongoStoryRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": oid}); err != nil {
		return fmt.Errorf("delete stories by owner: %w", err)
	}
	return nil
}

func (r *MongoStoryRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoStoryRepository) list(ctx context.Context, filter bson.M, limit int64) ([]*domain.Story, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	var docs []storyDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stories: %w", err)
	}
	out := make([]*domain.Story, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}
