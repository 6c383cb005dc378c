package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// MongoFarmInputRepository persists farm-input price records.
type MongoFarmInputRepository struct {
	coll *mongo.Collection
}

func NewFarmInputRepository(db *mongo.Database) *MongoFarmInputRepository {
	return &MongoFarmInputRepository{coll: db.Collection(farmInputCollection)}
}

type farmInputDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Product   string             `bson:"product"`
	Category  string             `bson:"category"`
	Unit      string             `bson:"unit"`
	Price     float64            `bson:"price"`
	Region    string             `bson:"region,omitempty"`
	Source    string             `bson:"source,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *farmInputDoc) toDomain() *domain.FarmInput {
	return &domain.FarmInput{
		ID:        d.ID.Hex(),
		Product:   d.Product,
		Category:  d.Category,
		Unit:      d.Unit,
		Price:     d.Price,
		Region:    d.Region,
		Source:    d.Source,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *MongoFarmInputRepository) List(ctx context.Context, filter ports.FarmInputFilter, limit int64) ([]*domain.FarmInput, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Region != "" {
		query["region"] = filter.Region
	}
	if filter.Product != "" {
		query["product"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Product), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "product", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}

	var docs []farmInputDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode inputs: %w", err)
	}
	out := make([]*domain.FarmInput, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *MongoFarmInputRepository) Create(ctx context.Context, in *domain.FarmInput) (*domain.FarmInput, error) {
	now := time.Now().UTC()
	doc := farmInputDoc{
		Product:   in.Product,
		Category:  in.Category,
		Unit:      in.Unit,
		Price:     in.Price,
		Region:    in.Region,
		Source:    in.Source,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert input: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MongoFarmInputRepository) Update(ctx context.Context, id string, patch domain.FarmInputPatch) (*domain.FarmInput, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInputNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Product != nil {
		set["product"] = *patch.Product
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Unit != nil {
		set["unit"] = *patch.Unit
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Region != nil {
		set["region"] = *patch.Region
	}
	if patch.Source != nil {
		set["source"] = *patch.Source
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}

	var doc farmInputDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInputNotFound
		}
		return nil, fmt.Errorf("update input: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoFarmInputRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInputNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete input: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInputNotFound
	}
	return nil
}
