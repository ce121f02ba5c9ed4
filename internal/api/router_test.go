package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	_ "github.com/SilvanaJ90/nequibot-assessment-backend/docs"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/api/handler"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/domain"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/ports"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/core/service"
	"github.com/SilvanaJ90/nequibot-assessment-backend/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Test server
// ---------------------------------------------------------------------------

type testServer struct {
	stores ports.Stores
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(memory.NewStores())
}

func newTestServerWith(stores ports.Stores, checks ...handler.DependencyCheck) *testServer {
	log := zerolog.Nop()
	moderation := service.NewModerationService(stores.BannedWords, nil, log)
	sessions := service.NewSessionService(stores.Senders, stores.Sessions, log)

	e := NewRouter(Deps{
		Messages:   service.NewMessageService(stores, moderation, nil, log),
		Sessions:   sessions,
		Senders:    service.NewSenderService(stores.Senders, 4, log),
		Moderation: moderation,
		Checks:     checks,
		Log:        log,
	})
	return &testServer{stores: stores, router: e}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) addSender(t *testing.T, id string) {
	t.Helper()
	if _, err := s.stores.Senders.Create(context.Background(), &domain.Sender{
		Record:   domain.Record{ID: id},
		IsActive: true,
		Type:     domain.SenderUser,
	}); err != nil {
		t.Fatalf("add sender: %v", err)
	}
}

type messageData struct {
	MessageID string         `json:"message_id"`
	SessionID string         `json:"session_id"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
	Sender    *string        `json:"sender"`
	SenderID  string         `json:"sender_id"`
	Metadata  map[string]any `json:"metadata"`
}

type okEnvelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) handler.ErrorResponse {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	body := decode[handler.ErrorResponse](t, rec)
	if body.Status != "error" {
		t.Errorf("expected status \"error\", got %q", body.Status)
	}
	if body.Error.Code != code {
		t.Errorf("expected code %s, got %s", code, body.Error.Code)
	}
	return body
}

func (s *testServer) post(t *testing.T, body string) messageData {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/messages", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decode[okEnvelope[messageData]](t, rec).Data
}

// ---------------------------------------------------------------------------
// POST /api/messages
// ---------------------------------------------------------------------------

func TestPostMessage_Created(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")

	rec := srv.do(http.MethodPost, "/api/messages", `{"content":"Hola mundo","sender_id":"S1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decode[okEnvelope[messageData]](t, rec)
	if body.Status != "success" {
		t.Errorf("expected status success, got %q", body.Status)
	}
	data := body.Data
	if data.Sender == nil || *data.Sender != "S1" {
		t.Errorf("expected sender S1, got %v", data.Sender)
	}
	if data.SessionID == "" || data.MessageID == "" {
		t.Errorf("expected public ids, got %+v", data)
	}
	if !strings.HasSuffix(data.Timestamp, "Z") {
		t.Errorf("timestamp must end in Z, got %q", data.Timestamp)
	}
	if data.Metadata["word_count"] != float64(2) || data.Metadata["character_count"] != float64(10) {
		t.Errorf("unexpected metadata %v", data.Metadata)
	}
	if _, ok := data.Metadata["processed_at"]; !ok {
		t.Error("metadata must carry processed_at")
	}
}

func TestPostMessage_ExistingSession(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")

	first := srv.post(t, `{"content":"uno","sender_id":"S1"}`)
	second := srv.post(t, `{"content":"dos","sender_id":"S1","session_id":"`+first.SessionID+`"}`)

	if second.SessionID != first.SessionID {
		t.Errorf("expected session %q, got %q", first.SessionID, second.SessionID)
	}
}

func TestPostMessage_LegacySenderField(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")

	data := srv.post(t, `{"content":"hola","sender":"S1"}`)
	if data.Sender == nil || *data.Sender != "S1" {
		t.Errorf("legacy sender id must resolve, got %v", data.Sender)
	}

	// A legacy sender type carries no id, so there is no sender to resolve.
	rec := srv.do(http.MethodPost, "/api/messages", `{"content":"hola","sender":"bot"}`)
	expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)
}

func TestPostMessage_LegacySenderMatchesTypeExactly(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "Bot")

	data := srv.post(t, `{"content":"Hola","sender":"Bot"}`)
	if data.Sender == nil || *data.Sender != "Bot" {
		t.Errorf("expected sender \"Bot\" resolved as an id, got %v", data.Sender)
	}
}

func TestPostMessage_SenderNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/messages", `{"content":"hola","sender_id":"ghost"}`)
	body := expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)
	if body.Error.Message != "sender not found" {
		t.Errorf("unexpected message %q", body.Error.Message)
	}
}

func TestPostMessage_SessionNotFound(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")

	rec := srv.do(http.MethodPost, "/api/messages", `{"content":"hola","sender_id":"S1","session_id":"nope"}`)
	expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)
}

func TestPostMessage_BannedWord(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")
	if _, err := srv.stores.BannedWords.Create(context.Background(), &domain.BannedWord{Word: "prohibido"}); err != nil {
		t.Fatalf("add banned word: %v", err)
	}

	rec := srv.do(http.MethodPost, "/api/messages", `{"content":"Esto es prohibido","sender_id":"S1"}`)
	expectError(t, rec, http.StatusForbidden, handler.CodeForbidden)

	all, _ := srv.stores.Messages.List(context.Background())
	if len(all) != 0 {
		t.Errorf("forbidden content must not be stored, got %d messages", len(all))
	}
}

func TestPostMessage_InvalidRequests(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed json", `{"content":`, ""},
		{"empty body", ``, ""},
		{"not an object", `["hola"]`, ""},
		{"missing content", `{"sender_id":"S1"}`, "content"},
		{"blank content", `{"content":"   ","sender_id":"S1"}`, "content"},
		{"content not a string", `{"content":123,"sender_id":"S1"}`, "content"},
		{"bad sender_type", `{"content":"hola","sender_id":"S1","sender_type":"robot"}`, "sender_type"},
		{"legacy sender not a string", `{"content":"hola","sender":5}`, "sender"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(http.MethodPost, "/api/messages", tc.body)
			body := expectError(t, rec, http.StatusBadRequest, handler.CodeInvalidRequest)
			if tc.field == "" {
				return
			}
			found := false
			for _, fe := range body.Error.Details {
				if fe.Field == tc.field && strings.Contains(fe.Message, tc.field) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a detail for field %q, got %+v", tc.field, body.Error.Details)
			}
		})
	}

	all, _ := srv.stores.Messages.List(context.Background())
	if len(all) != 0 {
		t.Errorf("invalid requests must not store anything, got %d", len(all))
	}
}

func TestPostMessage_StoreFailureIsGeneric500(t *testing.T) {
	stores := memory.NewStores()
	stores.Messages = failingMessages{stores.Messages}
	srv := newTestServerWith(stores)
	srv.addSender(t, "S1")

	rec := srv.do(http.MethodPost, "/api/messages", `{"content":"hola","sender_id":"S1"}`)
	body := expectError(t, rec, http.StatusInternalServerError, handler.CodeServerError)
	if strings.Contains(body.Error.Message, "disk") {
		t.Errorf("internal detail leaked: %q", body.Error.Message)
	}
}

type failingMessages struct {
	ports.MessageRepository
}

func (failingMessages) Create(context.Context, *domain.Message) (*domain.Message, error) {
	return nil, errors.New("disk on fire")
}

// ---------------------------------------------------------------------------
// GET /api/messages/:session_id
// ---------------------------------------------------------------------------

func TestListMessages_Pagination(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")

	first := srv.post(t, `{"content":"primero","sender_id":"S1"}`)
	srv.post(t, `{"content":"segundo","sender_id":"S1","session_id":"`+first.SessionID+`"}`)
	srv.post(t, `{"content":"tercero","sender_id":"S1","session_id":"`+first.SessionID+`"}`)

	rec := srv.do(http.MethodGet, "/api/messages/"+first.SessionID+"?limit=1&offset=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decode[okEnvelope[[]messageData]](t, rec)
	if len(body.Data) != 1 || body.Data[0].Content != "segundo" {
		t.Fatalf("expected exactly the second-oldest message, got %+v", body.Data)
	}
	if body.Data[0].SenderID != "S1" {
		t.Errorf("expected sender_id S1, got %q", body.Data[0].SenderID)
	}

	rec = srv.do(http.MethodGet, "/api/messages/"+first.SessionID+"/", "")
	all := decode[okEnvelope[[]messageData]](t, rec)
	if rec.Code != http.StatusOK || len(all.Data) != 3 {
		t.Fatalf("expected all 3 messages with a trailing slash, got %d / %d", rec.Code, len(all.Data))
	}
	for i, want := range []string{"primero", "segundo", "tercero"} {
		if all.Data[i].Content != want {
			t.Errorf("position %d: expected %q, got %q", i, want, all.Data[i].Content)
		}
	}

	rec = srv.do(http.MethodGet, "/api/messages/"+first.SessionID+"?limit=0", "")
	empty := decode[okEnvelope[[]messageData]](t, rec)
	if empty.Data == nil || len(empty.Data) != 0 {
		t.Errorf("limit=0 must return an empty list, got %s", rec.Body.String())
	}
}

func TestListMessages_SenderFilter(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")
	srv.addSender(t, "S2")

	first := srv.post(t, `{"content":"a","sender_id":"S1"}`)
	srv.post(t, `{"content":"b","sender_id":"S2","session_id":"`+first.SessionID+`"}`)

	rec := srv.do(http.MethodGet, "/api/messages/"+first.SessionID+"?sender=S2", "")
	body := decode[okEnvelope[[]messageData]](t, rec)
	if len(body.Data) != 1 || body.Data[0].SenderID != "S2" {
		t.Fatalf("expected only S2's message, got %+v", body.Data)
	}
}

func TestListMessages_UnknownSession(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/messages/unknown-session", "")
	expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)
}

func TestListMessages_BadQuery(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")
	first := srv.post(t, `{"content":"a","sender_id":"S1"}`)

	for _, q := range []string{"limit=abc", "offset=1.5", "limit=-1", "offset=-3"} {
		rec := srv.do(http.MethodGet, "/api/messages/"+first.SessionID+"?"+q, "")
		expectError(t, rec, http.StatusBadRequest, handler.CodeInvalidRequest)
	}
}

// ---------------------------------------------------------------------------
// Supplemental routes
// ---------------------------------------------------------------------------

func TestSendersAndSessions(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/senders", `{"email":"ana@example.com","password":"secret1","first_name":"Ana"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("sender view must not expose credentials: %s", rec.Body.String())
	}
	sender := decode[okEnvelope[map[string]any]](t, rec).Data
	senderID, _ := sender["id"].(string)

	rec = srv.do(http.MethodPost, "/api/senders", `{"email":"ana@example.com"}`)
	expectError(t, rec, http.StatusConflict, handler.CodeConflict)

	rec = srv.do(http.MethodPost, "/api/senders", `{"email":"not-an-email"}`)
	expectError(t, rec, http.StatusBadRequest, handler.CodeInvalidRequest)

	rec = srv.do(http.MethodPost, "/api/sessions", `{"sender_id":"`+senderID+`","title":"Soporte"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	session := decode[okEnvelope[map[string]any]](t, rec).Data
	publicID, _ := session["session_id"].(string)
	if publicID == "" || publicID == session["id"] {
		t.Errorf("expected a distinct public id, got %v", session)
	}

	rec = srv.do(http.MethodGet, "/api/sessions/"+publicID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = srv.do(http.MethodPost, "/api/sessions", `{"sender_id":"ghost"}`)
	expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)

	rec = srv.do(http.MethodDelete, "/api/senders/"+senderID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = srv.do(http.MethodGet, "/api/senders/"+senderID, "")
	expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)
}

func TestBannedWords(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")

	rec := srv.do(http.MethodPost, "/api/banned-words", `{"word":"Prohibido"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	word := decode[okEnvelope[map[string]any]](t, rec).Data
	wordID, _ := word["id"].(string)

	rec = srv.do(http.MethodPost, "/api/banned-words", `{"word":"prohibido"}`)
	expectError(t, rec, http.StatusConflict, handler.CodeConflict)

	rec = srv.do(http.MethodPost, "/api/messages", `{"content":"algo PROHIBIDO","sender_id":"S1"}`)
	expectError(t, rec, http.StatusForbidden, handler.CodeForbidden)

	rec = srv.do(http.MethodGet, "/api/banned-words", "")
	list := decode[okEnvelope[[]map[string]any]](t, rec).Data
	if len(list) != 1 || list[0]["word"] != "prohibido" {
		t.Fatalf("unexpected list %v", list)
	}

	rec = srv.do(http.MethodDelete, "/api/banned-words/"+wordID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	srv.post(t, `{"content":"algo PROHIBIDO","sender_id":"S1"}`)

	rec = srv.do(http.MethodDelete, "/api/banned-words/"+wordID, "")
	expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)
}

func TestDeleteMessage(t *testing.T) {
	srv := newTestServer(t)
	srv.addSender(t, "S1")
	msg := srv.post(t, `{"content":"hola","sender_id":"S1"}`)

	rec := srv.do(http.MethodDelete, "/api/messages/"+msg.SessionID+"/"+msg.MessageID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = srv.do(http.MethodDelete, "/api/messages/"+msg.SessionID+"/"+msg.MessageID, "")
	expectError(t, rec, http.StatusNotFound, handler.CodeNotFound)
}

// ---------------------------------------------------------------------------
// Generic errors and operational routes
// ---------------------------------------------------------------------------

func TestUnknownRouteAndMethod(t *testing.T) {
	srv := newTestServer(t)

	expectError(t, srv.do(http.MethodGet, "/nope", ""), http.StatusNotFound, handler.CodeNotFound)
	expectError(t, srv.do(http.MethodPut, "/api/messages", `{}`), http.StatusMethodNotAllowed, handler.CodeMethodNotAllowed)
}

func TestHealth(t *testing.T) {
	srv := newTestServerWith(memory.NewStores(),
		handler.DependencyCheck{Name: "store", Check: func(context.Context) error { return nil }},
	)
	if rec := srv.do(http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := srv.do(http.MethodGet, "/health/ready", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	down := newTestServerWith(memory.NewStores(),
		handler.DependencyCheck{Name: "redis", Check: func(context.Context) error { return errors.New("refused") }},
	)
	rec := down.do(http.MethodGet, "/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "refused") {
		t.Errorf("expected dependency error in body, got %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	srv.do(http.MethodGet, "/health", "")

	rec := srv.do(http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Errorf("expected HTTP request metrics, got %s", rec.Body.String())
	}
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/messages/{session_id}") {
		t.Errorf("expected message routes in the document, got %s", rec.Body.String())
	}
}
