package trace

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := WithContext(context.Background(), "abc")
	if got := FromContext(ctx); got != "abc" {
		t.Errorf("FromContext = %q, want abc", got)
	}
	if got := FromContext(context.Background()); got != "" {
		t.Errorf("FromContext on empty ctx = %q, want empty", got)
	}
}

func TestFromHeader(t *testing.T) {
	if got := FromHeader("given"); got != "given" {
		t.Errorf("FromHeader = %q, want given", got)
	}
	a, b := FromHeader(""), FromHeader("")
	if a == "" || a == b {
		t.Errorf("expected distinct generated ids, got %q and %q", a, b)
	}
}
