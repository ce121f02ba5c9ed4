package domain

import "time"

// Record carries the identity and bookkeeping timestamps shared by every
// persisted kind. The store fills it in on write.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Base exposes the embedded record to generic store code.
func (r *Record) Base() *Record { return r }

// Stamp assigns the id and creation time when absent and always refreshes
// the update time.
func (r *Record) Stamp(newID func() string, now time.Time) {
	if r.ID == "" {
		r.ID = newID()
	}
	now = now.UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}
