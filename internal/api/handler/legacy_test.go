package handler

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNormalizeLegacySender(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantID   string
		wantType string
	}{
		{"sender id", `{"sender":"S1"}`, "S1", ""},
		{"sender type", `{"sender":"bot"}`, "", "bot"},
		{"capitalised type is an id", `{"sender":"System"}`, "System", ""},
		{"upper-case type is an id", `{"sender":"USER"}`, "USER", ""},
		{"new id wins", `{"sender":"user","sender_id":"S9"}`, "S9", ""},
		{"new type wins", `{"sender":"S1","sender_type":"user"}`, "", "user"},
		{"null sender", `{"sender":null}`, "", ""},
		{"blank sender", `{"sender":"  "}`, "", ""},
		{"absent", `{}`, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body map[string]json.RawMessage
			if err := json.Unmarshal([]byte(tc.body), &body); err != nil {
				t.Fatalf("bad fixture: %v", err)
			}
			if err := normalizeLegacySender(body); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := body["sender"]; ok {
				t.Error("legacy field must be removed")
			}

			var got struct {
				SenderID   string `json:"sender_id"`
				SenderType string `json:"sender_type"`
			}
			raw, _ := json.Marshal(body)
			_ = json.Unmarshal(raw, &got)

			if got.SenderID != tc.wantID {
				t.Errorf("expected sender_id %q, got %q", tc.wantID, got.SenderID)
			}
			if got.SenderType != tc.wantType {
				t.Errorf("expected sender_type %q, got %q", tc.wantType, got.SenderType)
			}
		})
	}
}

func TestNormalizeLegacySender_RejectsNonString(t *testing.T) {
	body := map[string]json.RawMessage{"sender": json.RawMessage(`42`)}

	err := normalizeLegacySender(body)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if len(reqErr.Fields) != 1 || reqErr.Fields[0].Field != "sender" {
		t.Errorf("unexpected fields %+v", reqErr.Fields)
	}
}

func TestDecodeMessageRequest_TrimsContent(t *testing.T) {
	req, err := decodeMessageRequest([]byte(`{"content":"  hola  ","sender":"S1","session_id":"abc"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Content != "hola" || req.SenderID != "S1" || req.SessionID != "abc" {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestFormatTimestamp_EndsInZ(t *testing.T) {
	local := time.Date(2026, 5, 4, 10, 30, 0, 250_000_000, time.FixedZone("COT", -5*3600))

	got := formatTimestamp(local)
	if got != "2026-05-04T15:30:00.25Z" {
		t.Errorf("expected UTC with trailing Z, got %q", got)
	}
}
