package domain

import "strings"

// BannedWord is a single prohibited term.
type BannedWord struct {
	Record `bson:",inline"`
	Word   string `json:"word" bson:"word"`
}

// NormalizeWord is the canonical stored form of a banned term.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
