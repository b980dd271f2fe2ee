package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestDispatch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/akzarma/telegram-alerts/dispatches" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer gh-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github.v3+json" {
			t.Errorf("Accept = %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent must be set for the GitHub API")
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		if body["event_type"] != "daily-alert" {
			t.Errorf("event_type = %q", body["event_type"])
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gh-token", "akzarma/telegram-alerts", "", zap.NewNop())
	if err := c.Dispatch(context.Background()); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
}

func TestDispatch_NonNoContentFails(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusUnauthorized, http.StatusNotFound, http.StatusUnprocessableEntity} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message":"nope"}`))
		}))

		c := NewClient(srv.URL, "t", "o/r", "custom-event", zap.NewNop())
		err := c.Dispatch(context.Background())
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("status %d: expected ErrUnexpectedStatus, got %v", status, err)
		}
		srv.Close()
	}
}

func TestDispatch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "t", "o/r", "", zap.NewNop())
	if err := c.Dispatch(context.Background()); err == nil {
		t.Fatal("expected error from closed server")
	}
}
