package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

type recordPtr[T any] interface {
	*T
	Base() *domain.Record
}

// recordStore is the collection-backed implementation of ports.EntityStore.
// Documents are keyed by the record id in _id.
type recordStore[T any, P recordPtr[T]] struct {
	col      *mongo.Collection
	conflict error
	now      func() time.Time
	newID    func() string
}

func newRecordStore[T any, P recordPtr[T]](col *mongo.Collection, conflict error) *recordStore[T, P] {
	return &recordStore[T, P]{
		col:      col,
		conflict: conflict,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Create inserts the whole entity after stamping its id and timestamps. The
// caller's entity is left untouched when the insert fails. Unique index
// violations map to the kind's conflict error.
func (r *recordStore[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *entity
	P(&doc).Base().Stamp(r.newID, r.now())

	if _, err := r.col.InsertOne(ctx, &doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, r.conflict
		}
		return nil, fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}

	*entity = doc
	out := doc
	return &out, nil
}

func (r *recordStore[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// List loads the whole collection keyed by record id.
func (r *recordStore[T, P]) List(ctx context.Context) (map[string]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make(map[string]*T)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
		}
		out[P(&doc).Base().ID] = &doc
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}
	return out, nil
}

func (r *recordStore[T, P]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *recordStore[T, P]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	return &doc, nil
}
