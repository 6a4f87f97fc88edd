package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRevalidatePostsAffectedPaths(t *testing.T) {
	var received []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		var body struct {
			Paths []string `json:"paths"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode webhook body: %v", err)
		}
		received = body.Paths
	}))
	defer server.Close()

	revalidator := NewRevalidator(server.URL)
	revalidator.Revalidate("/blog", "/blog/hello-world")

	if len(received) != 2 || received[0] != "/blog" || received[1] != "/blog/hello-world" {
		t.Fatalf("unexpected paths: %v", received)
	}
}

func TestRevalidateNoopWithoutEndpoint(t *testing.T) {
	revalidator := NewRevalidator("")
	// Must not panic or block
	revalidator.Revalidate("/blog")
}

func TestRevalidateSurvivesDeadEndpoint(t *testing.T) {
	revalidator := NewRevalidator("http://127.0.0.1:1/revalidate")
	// Failure is logged, never returned
	revalidator.Revalidate("/blog")
}
