package facts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFunFactSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req factRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("cannot decode request: %v", err)
		}
		if req.Prompt != "snakes?" {
			t.Errorf("prompt = %q, expected %q", req.Prompt, "snakes?")
		}
		json.NewEncoder(w).Encode(factResponse{Text: "  Some snakes can glide.  "})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got := c.FunFact(context.Background(), "snakes?")
	if got != "Some snakes can glide." {
		t.Errorf("FunFact() = %q", got)
	}
}

func TestFunFactFallbacks(t *testing.T) {
	badStatus := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer badStatus.Close()

	emptyBody := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(factResponse{Text: "   "})
	}))
	defer emptyBody.Close()

	notJSON := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>nope</html>"))
	}))
	defer notJSON.Close()

	tests := []struct {
		name     string
		endpoint string
	}{
		{"no endpoint", ""},
		{"unreachable", "http://127.0.0.1:1/fact"},
		{"server error", badStatus.URL},
		{"blank text", emptyBody.URL},
		{"invalid json", notJSON.URL},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient(tc.endpoint, 500*time.Millisecond)
			if got := c.FunFact(context.Background(), "p"); got != Fallback {
				t.Errorf("FunFact() = %q, expected fallback", got)
			}
		})
	}
}

func TestFetchRespectsContext(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, 10*time.Second)
	if _, err := c.Fetch(ctx, "p"); err == nil {
		t.Error("Fetch() should fail when the context expires")
	}
}
