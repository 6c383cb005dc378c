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

// MongoQuestionRepository persists questions. The routing fields are stored
// as ObjectIDs so the (expert_id, created_at) and (asker_id, created_at)
// indexes stay compact.
type MongoQuestionRepository struct {
	coll *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *MongoQuestionRepository {
	return &MongoQuestionRepository{coll: db.Collection(questionCollection)}
}

type questionDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ExpertID   primitive.ObjectID `bson:"expert_id"`
	AskerID    primitive.ObjectID `bson:"asker_id"`
	Message    string             `bson:"message"`
	Answer     string             `bson:"answer,omitempty"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
	AnsweredAt *time.Time         `bson:"answered_at,omitempty"`
}

func (d *questionDoc) toDomain() *domain.Question {
	return &domain.Question{
		ID:         d.ID.Hex(),
		ExpertID:   d.ExpertID.Hex(),
		AskerID:    d.AskerID.Hex(),
		Message:    d.Message,
		Answer:     d.Answer,
		Status:     domain.QuestionStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		AnsweredAt: d.AnsweredAt,
	}
}

func (r *MongoQuestionRepository) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	expertID, err := primitive.ObjectIDFromHex(q.ExpertID)
	if err != nil {
		return nil, domain.ErrExpertNotFound
	}
	askerID, err := primitive.ObjectIDFromHex(q.AskerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := questionDoc{
		ExpertID:  expertID,
		AskerID:   askerID,
		Message:   q.Message,
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MongoQuestionRepository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	var doc questionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoQuestionRepository) ListByAsker(ctx context.Context, askerID string, limit int64) ([]*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(askerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.list(ctx, bson.M{"asker_id": oid}, limit)
}

func (r *MongoQuestionRepository) ListByExpert(ctx context.Context, expertID string, limit int64) ([]*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(expertID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.list(ctx, bson.M{"expert_id": oid}, limit)
}

func (r *MongoQuestionRepository) SetAnswer(ctx context.Context, id, answer string, answeredAt time.Time) (*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	var doc questionDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"answer":      answer,
			"status":      string(domain.QuestionAnswered),
			"updated_at":  answeredAt,
			"answered_at": answeredAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("set answer: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoQuestionRepository) list(ctx context.Context, filter bson.M, limit int64) ([]*domain.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	var docs []questionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	out := make([]*domain.Question, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}
