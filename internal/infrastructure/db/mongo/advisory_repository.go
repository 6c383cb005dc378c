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
)

// MongoAdvisoryRepository persists advisories.
type MongoAdvisoryRepository struct {
	coll *mongo.Collection
}

func NewAdvisoryRepository(db *mongo.Database) *MongoAdvisoryRepository {
	return &MongoAdvisoryRepository{coll: db.Collection(advisoryCollection)}
}

type advisoryDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Location        string             `bson:"location"`
	RecommendedCrop string             `bson:"recommended_crop"`
	Weather         string             `bson:"weather,omitempty"`
	SoilHealth      string             `bson:"soil_health,omitempty"`
	Resources       string             `bson:"resources,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *advisoryDoc) toDomain() *domain.Advisory {
	return &domain.Advisory{
		ID:              d.ID.Hex(),
		Location:        d.Location,
		RecommendedCrop: d.RecommendedCrop,
		Weather:         d.Weather,
		SoilHealth:      d.SoilHealth,
		Resources:       d.Resources,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (r *MongoAdvisoryRepository) List(ctx context.Context) ([]*domain.Advisory, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list advisories: %w", err)
	}

	var docs []advisoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode advisories: %w", err)
	}
	out := make([]*domain.Advisory, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *MongoAdvisoryRepository) Create(ctx context.Context, a *domain.Advisory) (*domain.Advisory, error) {
	now := time.Now().UTC()
	doc := advisoryDoc{
		Location:        a.Location,
		RecommendedCrop: a.RecommendedCrop,
		Weather:         a.Weather,
		SoilHealth:      a.SoilHealth,
		Resources:       a.Resources,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert advisory: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MongoAdvisoryRepository) Update(ctx context.Context, id string, patch domain.AdvisoryPatch) (*domain.Advisory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdvisoryNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.RecommendedCrop != nil {
		set["recommended_crop"] = *patch.RecommendedCrop
	}
	if patch.Weather != nil {
		set["weather"] = *patch.Weather
	}
	if patch.SoilHealth != nil {
		set["soil_health"] = *patch.SoilHealth
	}
	if patch.Resources != nil {
		set["resources"] = *patch.Resources
	}

	var doc advisoryDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAdvisoryNotFound
		}
		return nil, fmt.Errorf("update advisory: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoAdvisoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdvisoryNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete advisory: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdvisoryNotFound
	}
	return nil
}
