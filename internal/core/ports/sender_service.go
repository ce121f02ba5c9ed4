package ports

import (
	"context"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// RegisterSenderInput carries the fields accepted when registering a sender.
type RegisterSenderInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Type      string
}

type SenderService interface {
	Register(ctx context.Context, in RegisterSenderInput) (*domain.Sender, error)
	Get(ctx context.Context, id string) (*domain.Sender, error)
	Delete(ctx context.Context, id string) error
}
