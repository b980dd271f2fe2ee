package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	var syntaxErr error
	if err := json.Unmarshal([]byte("<html>"), &struct{}{}); err != nil {
		syntaxErr = err
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"canceled", fmt.Errorf("send: %w", context.Canceled), "context_canceled"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"url timeout", &url.Error{Op: "Post", URL: "http://x", Err: timeoutErr{}}, "network_timeout"},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, "network_error"},
		{"json", fmt.Errorf("failed to parse: %w", syntaxErr), "json_decode_error"},
		{"other", errors.New("boom"), "unknown_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.want {
				t.Errorf("ClassifyError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(502, errors.New("bad gateway")); got != "502" {
		t.Errorf("StatusLabel(502) = %q", got)
	}
	if got := StatusLabel(0, context.DeadlineExceeded); got != "timeout" {
		t.Errorf("StatusLabel(0, deadline) = %q", got)
	}
	if got := StatusLabel(204, nil); got != "204" {
		t.Errorf("StatusLabel(204) = %q", got)
	}
}
