package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
)

// Enrich computes the text metrics stored with every message. Counts are
// taken on the trimmed text; processed_at is now in UTC.
func Enrich(text string, now time.Time) domain.TextMetrics {
	trimmed := strings.TrimSpace(text)
	return domain.TextMetrics{
		WordCount:      len(strings.Fields(trimmed)),
		CharacterCount: utf8.RuneCountInString(trimmed),
		ProcessedAt:    now.UTC(),
	}
}
