package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "123:abc", zap.NewNop())
	err := c.SendMessage(context.Background(), OutgoingMessage{
		ChatID:      42,
		Text:        "<b>hi</b>",
		ParseMode:   ParseModeHTML,
		ReplyMarkup: NewReplyKeyboard(true, []string{"What's next?"}),
	})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if gotPath != "/bot123:abc/sendMessage" {
		t.Errorf("path = %q", gotPath)
	}
	if got["chat_id"] != float64(42) || got["text"] != "<b>hi</b>" || got["parse_mode"] != "HTML" {
		t.Errorf("unexpected body: %v", got)
	}
	markup, ok := got["reply_markup"].(map[string]any)
	if !ok {
		t.Fatalf("reply_markup missing: %v", got)
	}
	if markup["resize_keyboard"] != true {
		t.Errorf("resize_keyboard = %v", markup["resize_keyboard"])
	}
	rows := markup["keyboard"].([]any)
	button := rows[0].([]any)[0].(map[string]any)
	if button["text"] != "What's next?" {
		t.Errorf("button = %v", button)
	}
}

func TestSendMessage_OmitsEmptyMarkup(t *testing.T) {
	var raw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t", zap.NewNop())
	if err := c.SendMessage(context.Background(), OutgoingMessage{ChatID: 1, Text: "x"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if strings.Contains(raw, "reply_markup") || strings.Contains(raw, "parse_mode") {
		t.Errorf("expected optional fields omitted, got %s", raw)
	}
}

func TestSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t", zap.NewNop())
	err := c.SendMessage(context.Background(), OutgoingMessage{ChatID: 1, Text: "x"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Description != "Bad Request: chat not found" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestSendMessage_NetworkErrorRedactsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "secret-token", zap.NewNop())
	err := c.SendMessage(context.Background(), OutgoingMessage{ChatID: 1, Text: "x"})
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if strings.Contains(err.Error(), "secret-token") {
		t.Errorf("error leaks token: %v", err)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("", "t", zap.NewNop())
	if c.baseURL != DefaultAPIBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}
