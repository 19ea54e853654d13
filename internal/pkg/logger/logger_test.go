package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVs(t *testing.T) {
	redactionOn()
	if !redactionEnabled {
		t.Skip("LOG_REDACTION_ENABLED is off in this environment")
	}

	out := sanitizeKVs([]interface{}{
		"client_id", "203.0.113.9",
		"admin_token", "abc",
		"query_length", 42,
		"dangling",
	})
	if len(out) != 7 {
		t.Fatalf("unexpected length: got=%d want=7", len(out))
	}
	if got, ok := out[1].(string); !ok || !strings.HasPrefix(got, "hash:") {
		t.Fatalf("client_id not hashed: %v", out[1])
	}
	if out[3] != "[REDACTED]" {
		t.Fatalf("token not redacted: %v", out[3])
	}
	if out[5] != 42 {
		t.Fatalf("plain value changed: %v", out[5])
	}
	if out[6] != "dangling" {
		t.Fatalf("dangling key dropped: %v", out[6])
	}
}

func TestHashValueIsStable(t *testing.T) {
	a := hashValue("198.51.100.7")
	b := hashValue("198.51.100.7")
	if a != b {
		t.Fatalf("hash not stable: %q vs %q", a, b)
	}
	if hashValue("") != "" {
		t.Fatalf("empty value should hash to empty string")
	}
}
