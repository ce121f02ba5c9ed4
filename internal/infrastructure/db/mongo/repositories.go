package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

const (
	collectionSenders     = "senders"
	collectionSessions    = "sessions"
	collectionMessages    = "messages"
	collectionBannedWords = "banned_words"
)

type SenderRepository struct {
	*recordStore[domain.Sender, *domain.Sender]
}

func NewSenderRepository(db *mongo.Database) *SenderRepository {
	return &SenderRepository{newRecordStore[domain.Sender](db.Collection(collectionSenders), domain.ErrSenderExists)}
}

func (r *SenderRepository) FindByEmail(ctx context.Context, email string) (*domain.Sender, error) {
	if email == "" {
		return nil, domain.ErrRecordNotFound
	}
	return r.findOne(ctx, bson.M{"email": email})
}

type SessionRepository struct {
	*recordStore[domain.Session, *domain.Session]
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{newRecordStore[domain.Session](db.Collection(collectionSessions), domain.ErrSessionExists)}
}

// FindByPublicID uses the unique session_id index; matching is exact.
func (r *SessionRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Session, error) {
	return r.findOne(ctx, bson.M{"session_id": publicID})
}

type MessageRepository struct {
	*recordStore[domain.Message, *domain.Message]
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{newRecordStore[domain.Message](db.Collection(collectionMessages), domain.ErrMessageExists)}
}

type BannedWordRepository struct {
	*recordStore[domain.BannedWord, *domain.BannedWord]
}

func NewBannedWordRepository(db *mongo.Database) *BannedWordRepository {
	return &BannedWordRepository{newRecordStore[domain.BannedWord](db.Collection(collectionBannedWords), domain.ErrBannedWordExists)}
}

func (r *BannedWordRepository) FindByWord(ctx context.Context, word string) (*domain.BannedWord, error) {
	return r.findOne(ctx, bson.M{"word": word})
}

// NewStores wires a repository for every entity kind against db.
func NewStores(db *mongo.Database) ports.Stores {
	return ports.Stores{
		Senders:     NewSenderRepository(db),
		Sessions:    NewSessionRepository(db),
		Messages:    NewMessageRepository(db),
		BannedWords: NewBannedWordRepository(db),
	}
}

// EnsureIndexes creates the unique and lookup indexes for every collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		collectionSenders: {
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"email": bson.M{"$exists": true}}),
			},
		},
		collectionSessions: {
			{Keys: bson.D{{Key: "session_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		collectionMessages: {
			{Keys: bson.D{{Key: "message_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		},
		collectionBannedWords: {
			{Keys: bson.D{{Key: "word", Value: 1}}, Options: unique},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
