package domain

// Session is a conversation thread owned by exactly one sender. SessionID is
// the public identifier used in URLs and payloads; it is distinct from ID.
type Session struct {
	Record    `bson:",inline"`
	SessionID string `json:"session_id" bson:"session_id"`
	UserID    string `json:"user_id" bson:"user_id"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
}
