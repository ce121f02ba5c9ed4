package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

// Fixed identifiers of the demo data set.
const (
	DemoSenderID        = "sender_1"
	DemoSessionRecordID = "sess_id_1"
	DemoSessionPublicID = "sess_123456"
	DemoMessageRecordID = "msg_id_1"
	DemoMessagePublicID = "msg_001"
	demoMessageContent  = "Hola, este es un mensaje de prueba"
	demoSessionTitle    = "Chat de prueba"
	demoSenderEmail     = "user1@example.com"
	demoSenderFirstName = "User"
	demoSenderLastName  = "One"
)

// SeedDemoData inserts one sender, one session and one message so a fresh
// deployment has something to query. Rows that already exist are left alone,
// which makes the call safe to repeat on every start.
func SeedDemoData(ctx context.Context, stores ports.Stores, log zerolog.Logger) error {
	now := time.Now().UTC()

	created, err := seedOne[domain.Sender](ctx, stores.Senders, DemoSenderID, &domain.Sender{
		Record:    domain.Record{ID: DemoSenderID},
		Email:     demoSenderEmail,
		FirstName: demoSenderFirstName,
		LastName:  demoSenderLastName,
		IsActive:  true,
		Type:      domain.SenderUser,
	})
	if err != nil {
		return fmt.Errorf("seed sender: %w", err)
	}
	logSeed(log, "sender", DemoSenderID, created)

	created, err = seedOne[domain.Session](ctx, stores.Sessions, DemoSessionRecordID, &domain.Session{
		Record:    domain.Record{ID: DemoSessionRecordID},
		SessionID: DemoSessionPublicID,
		UserID:    DemoSenderID,
		Title:     demoSessionTitle,
	})
	if err != nil {
		return fmt.Errorf("seed session: %w", err)
	}
	logSeed(log, "session", DemoSessionPublicID, created)

	msg := &domain.Message{
		Record:    domain.Record{ID: DemoMessageRecordID},
		MessageID: DemoMessagePublicID,
		SessionID: DemoSessionPublicID,
		SenderID:  DemoSenderID,
		Content:   demoMessageContent,
		Timestamp: now,
	}
	if err := msg.SetMetadata(Enrich(demoMessageContent, now)); err != nil {
		return fmt.Errorf("seed message: %w", err)
	}
	created, err = seedOne[domain.Message](ctx, stores.Messages, DemoMessageRecordID, msg)
	if err != nil {
		return fmt.Errorf("seed message: %w", err)
	}
	logSeed(log, "message", DemoMessagePublicID, created)

	return nil
}

func seedOne[T any](ctx context.Context, store ports.EntityStore[T], id string, entity *T) (bool, error) {
	_, err := store.Get(ctx, id)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return false, err
	}
	if _, err := store.Create(ctx, entity); err != nil {
		return false, err
	}
	return true, nil
}

func logSeed(log zerolog.Logger, kind, id string, created bool) {
	if created {
		log.Info().Str("kind", kind).Str("id", id).Msg("demo data seeded")
		return
	}
	log.Debug().Str("kind", kind).Str("id", id).Msg("demo data already present")
}
