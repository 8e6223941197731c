package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lastomo-app/internal/chat"
	"lastomo-app/internal/llm"
	"lastomo-app/internal/store"
	"lastomo-app/internal/testutil"
)

func newTestHandlers(provider *testutil.MockProvider, mockStore *testutil.MockStore) *Handlers {
	return NewHandlers(chat.NewService(provider), mockStore)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestChatHandler_Success(t *testing.T) {
	provider := &testutil.MockProvider{
		CompleteFunc: func(messages []llm.Message) (string, error) {
			return "  hello there  ", nil
		},
	}
	h := newTestHandlers(provider, &testutil.MockStore{})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(
		`{"message": "C", "history": [{"role": "user", "content": "A"}, {"role": "assistant", "content": "B"}]}`))
	rec := httptest.NewRecorder()

	h.ChatHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["response"] != "hello there" {
		t.Errorf("expected trimmed response, got %q", body["response"])
	}

	// The provider received the assembled sequence: system, A, B, C
	if len(provider.Calls) != 1 {
		t.Fatalf("expected one provider call, got %d", len(provider.Calls))
	}
	sent := provider.Calls[0]
	if len(sent) != 4 {
		t.Fatalf("expected 4 messages sent to provider, got %d", len(sent))
	}
	if sent[0].Role != "system" || sent[1].Content != "A" || sent[2].Content != "B" || sent[3].Content != "C" {
		t.Errorf("unexpected assembled sequence: %+v", sent)
	}
}

func TestChatHandler_InvalidBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"array", `[1, 2, 3]`},
		{"string", `"hello"`},
		{"null", `null`},
		{"truncated", `{"message": "hi"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &testutil.MockProvider{}
			mockStore := &testutil.MockStore{}
			h := newTestHandlers(provider, mockStore)

			req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.ChatHandler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
			if body := decodeBody(t, rec); body["error"] != "Invalid JSON" {
				t.Errorf("expected error %q, got %q", "Invalid JSON", body["error"])
			}
			if len(provider.Calls) != 0 {
				t.Error("provider must not be called for an invalid body")
			}
			if len(mockStore.Saved) != 0 {
				t.Error("store must not be written for an invalid body")
			}
		})
	}
}

func TestChatHandler_MissingMessage(t *testing.T) {
	provider := &testutil.MockProvider{}
	h := newTestHandlers(provider, &testutil.MockStore{})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"history": []}`))
	rec := httptest.NewRecorder()

	h.ChatHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if len(provider.Calls) != 0 {
		t.Error("provider must not be called when the message is missing")
	}
}

func TestChatHandler_ProviderFault(t *testing.T) {
	provider := &testutil.MockProvider{
		CompleteFunc: func(messages []llm.Message) (string, error) {
			return "", errors.New("connection timed out: secret-internal-detail")
		},
	}
	h := newTestHandlers(provider, &testutil.MockStore{})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message": "hi"}`))
	rec := httptest.NewRecorder()

	h.ChatHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Failed to get response from AI" {
		t.Errorf("expected generic error message, got %q", body["error"])
	}
	if strings.Contains(rec.Body.String(), "secret-internal-detail") {
		t.Error("provider error text must never reach the caller")
	}
}

func TestProfileHandler_Success(t *testing.T) {
	mockStore := &testutil.MockStore{
		SaveProfileFunc: func(profile *store.ProfileRecord) error { return nil },
	}
	h := newTestHandlers(&testutil.MockProvider{}, mockStore)

	req := httptest.NewRequest("POST", "/api/profile", strings.NewReader(`{"username": "alice"}`))
	rec := httptest.NewRecorder()

	h.ProfileHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Profile saved successfully" {
		t.Errorf("unexpected acknowledgement: %q", body["message"])
	}

	if len(mockStore.Saved) != 1 {
		t.Fatalf("expected exactly one store write, got %d", len(mockStore.Saved))
	}
	saved := mockStore.Saved[0]
	if saved.Username == nil || *saved.Username != "alice" {
		t.Errorf("expected username alice, got %v", saved.Username)
	}
	if saved.Nickname != nil || saved.Email != nil || saved.Gender != nil || saved.Age != nil ||
		saved.Occupation != nil || saved.FamilyStructure != nil || saved.Location != nil ||
		saved.Nationality != nil || saved.Religion != nil {
		t.Errorf("expected omitted fields to stay nil: %+v", saved)
	}
}

func TestProfileHandler_AllFields(t *testing.T) {
	mockStore := &testutil.MockStore{
		SaveProfileFunc: func(profile *store.ProfileRecord) error { return nil },
	}
	h := newTestHandlers(&testutil.MockProvider{}, mockStore)

	req := httptest.NewRequest("POST", "/api/profile", strings.NewReader(`{
		"username": "alice", "nickname": "al", "email": "a@example.com",
		"gender": "female", "age": 62, "occupation": "engineer",
		"familyStructure": "married", "location": "Tokyo",
		"nationality": "JP", "religion": "none"
	}`))
	rec := httptest.NewRecorder()

	h.ProfileHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	saved := mockStore.Saved[0]
	if saved.Age == nil || *saved.Age != 62 {
		t.Errorf("expected age 62, got %v", saved.Age)
	}
	if saved.FamilyStructure == nil || *saved.FamilyStructure != "married" {
		t.Errorf("expected familyStructure mapped, got %v", saved.FamilyStructure)
	}
}

func TestProfileHandler_InvalidBody(t *testing.T) {
	mockStore := &testutil.MockStore{}
	h := newTestHandlers(&testutil.MockProvider{}, mockStore)

	req := httptest.NewRequest("POST", "/api/profile", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	h.ProfileHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid JSON" {
		t.Errorf("expected error %q, got %q", "Invalid JSON", body["error"])
	}
	if len(mockStore.Saved) != 0 {
		t.Error("store must not be written for an invalid body")
	}
}

func TestProfileHandler_StoreFault(t *testing.T) {
	mockStore := &testutil.MockStore{
		SaveProfileFunc: func(profile *store.ProfileRecord) error {
			return errors.New("UNIQUE constraint failed: users.username")
		},
	}
	h := newTestHandlers(&testutil.MockProvider{}, mockStore)

	req := httptest.NewRequest("POST", "/api/profile", strings.NewReader(`{"username": "alice"}`))
	rec := httptest.NewRecorder()

	h.ProfileHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Failed to save profile" {
		t.Errorf("expected generic error message, got %q", body["error"])
	}
	if strings.Contains(rec.Body.String(), "UNIQUE constraint") {
		t.Error("store error text must never reach the caller")
	}
}
