package domain

import (
	"encoding/json"
	"time"
)

// Message is one persisted chat utterance. MessageID and SessionID are public
// identifiers; ID is the internal record key.
type Message struct {
	Record       `bson:",inline"`
	MessageID    string    `json:"message_id" bson:"message_id"`
	SessionID    string    `json:"session_id" bson:"session_id"`
	SenderID     string    `json:"sender_id" bson:"sender_id"`
	Content      string    `json:"content" bson:"content"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
	MetadataJSON string    `json:"-" bson:"metadata_json,omitempty"`
}

// TextMetrics is the metadata computed for every ingested message.
type TextMetrics struct {
	WordCount      int       `json:"word_count"`
	CharacterCount int       `json:"character_count"`
	ProcessedAt    time.Time `json:"processed_at"`
}

// SetMetadata serializes v into the message's metadata blob.
func (m *Message) SetMetadata(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.MetadataJSON = string(raw)
	return nil
}

// Metadata decodes the blob as an opaque key/value bag. An empty blob yields
// an empty, non-nil map.
func (m *Message) Metadata() (map[string]any, error) {
	out := map[string]any{}
	if m.MetadataJSON == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(m.MetadataJSON), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TextMetrics decodes the blob into the enrichment structure.
func (m *Message) TextMetrics() (TextMetrics, error) {
	var tm TextMetrics
	if m.MetadataJSON == "" {
		return tm, nil
	}
	err := json.Unmarshal([]byte(m.MetadataJSON), &tm)
	return tm, err
}
