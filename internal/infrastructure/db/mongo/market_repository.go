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

// MongoMarketRepository persists market price entries.
type MongoMarketRepository struct {
	coll *mongo.Collection
}

func NewMarketRepository(db *mongo.Database) *MongoMarketRepository {
	return &MongoMarketRepository{coll: db.Collection(marketCollection)}
}

type marketDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Product     string             `bson:"product"`
	Price       float64            `bson:"price"`
	Trend       string             `bson:"trend,omitempty"`
	TrendChange string             `bson:"trend_change,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *marketDoc) toDomain() *domain.Market {
	return &domain.Market{
		ID:          d.ID.Hex(),
		Product:     d.Product,
		Price:       d.Price,
		Trend:       d.Trend,
		TrendChange: d.TrendChange,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *MongoMarketRepository) List(ctx context.Context) ([]*domain.Market, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}

	var docs []marketDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode markets: %w", err)
	}
	out := make([]*domain.Market, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *MongoMarketRepository) Create(ctx context.Context, m *domain.Market) (*domain.Market, error) {
	now := time.Now().UTC()
	doc := marketDoc{
		Product:     m.Product,
		Price:       m.Price,
		Trend:       m.Trend,
		TrendChange: m.TrendChange,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert market: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MongoMarketRepository) Update(ctx context.Context, id string, in ports.MarketInput) (*domain.Market, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMarketNotFound
	}

	var doc marketDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"product":      in.Product,
			"price":        in.Price,
			"trend":        in.Trend,
			"trend_change": in.TrendChange,
			"updated_at":   time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMarketNotFound
		}
		return nil, fmt.Errorf("update market: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoMarketRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMarketNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete market: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMarketNotFound
	}
	return nil
}
