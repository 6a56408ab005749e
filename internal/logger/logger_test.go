package logger

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request ID on a fresh context")
	}

	id := GenerateRequestID()
	if id == "" {
		t.Fatal("expected a non-empty request ID")
	}

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	if !ok {
		t.Fatal("expected request ID to be present")
	}
	if got != id {
		t.Errorf("expected request ID %q, got %q", id, got)
	}
}

func TestFromContextIncludesRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-id")
	if FromContext(ctx) == nil {
		t.Fatal("expected a logger")
	}
	// Without a request ID the default logger is returned as-is
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a logger for plain context")
	}
}

func TestConfigLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"info":    "INFO",
		"warn":    "WARN",
		"warning": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		c := Config{Level: in}
		if got := c.LogLevel().String(); got != want {
			t.Errorf("LogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
