package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/financeflow/finance-api/internal/core/domain"
)

// RecordRepository is a MongoDB-backed ports.RecordRepository, parameterised
// by collection name. The invoices and transactions collections are two
// instances of this one type.
type RecordRepository struct {
	col *mongo.Collection
}

func NewRecordRepository(db *mongo.Database, collection string) *RecordRepository {
	return &RecordRepository{col: db.Collection(collection)}
}

// recordDoc inlines the open field map next to the store id.
type recordDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Fields domain.Fields      `bson:",inline"`
}

func (r *RecordRepository) ListAll(ctx context.Context) ([]domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.Record
	for cur.Next(ctx) {
		var d recordDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = append(records, domain.Record{ID: d.ID.Hex(), Fields: d.Fields})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (r *RecordRepository) Create(ctx context.Context, fields domain.Fields) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, recordDoc{Fields: fields})
	if err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert record: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update merges fields via $set. A zero-match update succeeds silently: these
// collections never promised a not-found error.
func (r *RecordRepository) Update(ctx context.Context, id string, fields domain.Fields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidRecordID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// Delete removes the document; deleting a missing id succeeds silently.
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidRecordID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
