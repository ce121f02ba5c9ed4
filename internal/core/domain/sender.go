package domain

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SenderType tags who authored a message.
type SenderType string

const (
	SenderUser   SenderType = "user"
	SenderSystem SenderType = "system"
	SenderBot    SenderType = "bot"
)

// ParseSenderType reports whether s names one of the known sender types.
func ParseSenderType(s string) (SenderType, bool) {
	switch t := SenderType(strings.ToLower(s)); t {
	case SenderUser, SenderSystem, SenderBot:
		return t, true
	}
	return "", false
}

// Sender models a human user, a bot, or the system itself.
type Sender struct {
	Record       `bson:",inline"`
	Email        string     `json:"email,omitempty" bson:"email,omitempty"`
	PasswordHash string     `json:"-" bson:"password_hash,omitempty"`
	FirstName    string     `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty" bson:"last_name,omitempty"`
	IsActive     bool       `json:"is_active" bson:"is_active"`
	Type         SenderType `json:"type" bson:"type"`
}

// SetPassword replaces the stored credential with a bcrypt hash of plain.
func (s *Sender) SetPassword(plain string, cost int) error {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return err
	}
	s.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash. Senders
// without a credential never match.
func (s *Sender) CheckPassword(plain string) bool {
	if s.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(plain)) == nil
}
