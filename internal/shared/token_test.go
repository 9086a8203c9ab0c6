package shared

import (
	"strings"
	"testing"
)

func TestNewTokenIsURLSafe(t *testing.T) {
	token, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	if token == "" {
		t.Fatal("token is empty")
	}
	if strings.ContainsAny(token, "+/=") {
		t.Fatalf("token %q contains non-URL-safe characters", token)
	}
}

func TestNewTokenIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		token, err := NewToken()
		if err != nil {
			t.Fatalf("NewToken: %v", err)
		}
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token %q after %d iterations", token, i)
		}
		seen[token] = struct{}{}
	}
}
