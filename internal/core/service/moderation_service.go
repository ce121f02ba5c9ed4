package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
)

type moderationService struct {
	repo  ports.BannedWordRepository
	cache ports.BannedWordCache
	log   zerolog.Logger
}

// NewModerationService returns a ModerationService. cache may be nil, in
// which case every check reads the word list from the store.
func NewModerationService(repo ports.BannedWordRepository, cache ports.BannedWordCache, log zerolog.Logger) ports.ModerationService {
	return &moderationService{repo: repo, cache: cache, log: log}
}

// ContainsBanned reports whether text contains any stored banned word.
func (s *moderationService) ContainsBanned(ctx context.Context, text string) (bool, error) {
	words, err := s.words(ctx)
	if err != nil {
		return false, fmt.Errorf("moderation: %w", err)
	}
	return ContainsAny(text, words), nil
}

// ContainsAny is a case-insensitive substring test against every word. A word
// that appears inside a longer token still matches. Empty words are ignored.
func ContainsAny(text string, words []string) bool {
	lowered := strings.ToLower(text)
	for _, w := range words {
		w = strings.ToLower(w)
		if w == "" {
			continue
		}
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

func (s *moderationService) words(ctx context.Context) ([]string, error) {
	var (
		generation int64
		populate   bool
	)
	if s.cache != nil {
		cached, ok, err := s.cache.Words(ctx)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("banned word cache read failed, falling back to store")
		case ok:
			return cached, nil
		}

		// Taken before the store read so a concurrent write voids the refill.
		if generation, err = s.cache.Generation(ctx); err != nil {
			s.log.Warn().Err(err).Msg("banned word cache generation unavailable, skipping refill")
		} else {
			populate = true
		}
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(rows))
	for _, bw := range rows {
		words = append(words, bw.Word)
	}

	if populate {
		if err := s.cache.SetWords(ctx, words, generation); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate banned word cache")
		}
	}
	return words, nil
}

func (s *moderationService) AddWord(ctx context.Context, word string) (*domain.BannedWord, error) {
	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return nil, fmt.Errorf("add banned word: %w", domain.ErrInvalidInput)
	}

	if _, err := s.repo.FindByWord(ctx, normalized); err == nil {
		return nil, fmt.Errorf("add banned word: %w", domain.ErrBannedWordExists)
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("add banned word: %w", err)
	}

	saved, err := s.repo.Create(ctx, &domain.BannedWord{Word: normalized})
	if err != nil {
		return nil, fmt.Errorf("add banned word: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info().Str("word_id", saved.ID).Msg("banned word added")
	return saved, nil
}

func (s *moderationService) RemoveWord(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("remove banned word: %w", domain.ErrBannedWordNotFound)
		}
		return fmt.Errorf("remove banned word: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info().Str("word_id", id).Msg("banned word removed")
	return nil
}

// ListWords returns every banned word ordered alphabetically.
func (s *moderationService) ListWords(ctx context.Context) ([]*domain.BannedWord, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banned words: %w", err)
	}
	out := make([]*domain.BannedWord, 0, len(rows))
	for _, bw := range rows {
		out = append(out, bw)
	}
	slices.SortFunc(out, func(a, b *domain.BannedWord) int { return strings.Compare(a.Word, b.Word) })
	return out, nil
}

func (s *moderationService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate banned word cache")
	}
}
