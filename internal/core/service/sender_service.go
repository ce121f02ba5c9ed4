package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

type senderService struct {
	repo       ports.SenderRepository
	bcryptCost int
	log        zerolog.Logger
}

// NewSenderService returns a SenderService. bcryptCost <= 0 uses the bcrypt
// default.
func NewSenderService(repo ports.SenderRepository, bcryptCost int, log zerolog.Logger) ports.SenderService {
	return &senderService{repo: repo, bcryptCost: bcryptCost, log: log}
}

// Register creates an active sender. Email is optional but unique when given;
// the password, when given, is stored only as a bcrypt hash.
func (s *senderService) Register(ctx context.Context, in ports.RegisterSenderInput) (*domain.Sender, error) {
	senderType := domain.SenderUser
	if in.Type != "" {
		t, ok := domain.ParseSenderType(in.Type)
		if !ok {
			return nil, fmt.Errorf("register sender: %w", domain.ErrInvalidInput)
		}
		senderType = t
	}

	if in.Email != "" {
		if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
			return nil, fmt.Errorf("register sender: %w", domain.ErrSenderExists)
		} else if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("register sender: %w", err)
		}
	}

	sender := &domain.Sender{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  true,
		Type:      senderType,
	}
	if in.Password != "" {
		if err := sender.SetPassword(in.Password, s.bcryptCost); err != nil {
			return nil, fmt.Errorf("register sender: hash password: %w", err)
		}
	}

	saved, err := s.repo.Create(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("register sender: %w", err)
	}
	s.log.Info().Str("sender_id", saved.ID).Str("type", string(saved.Type)).Msg("sender registered")
	return saved, nil
}

func (s *senderService) Get(ctx context.Context, id string) (*domain.Sender, error) {
	sender, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("get sender: %w", domain.ErrSenderNotFound)
		}
		return nil, fmt.Errorf("get sender: %w", err)
	}
	return sender, nil
}

func (s *senderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("delete sender: %w", domain.ErrSenderNotFound)
		}
		return fmt.Errorf("delete sender: %w", err)
	}
	s.log.Info().Str("sender_id", id).Msg("sender deleted")
	return nil
}
