package errs

import (
	"errors"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestNewDatabaseErrorDuplicateSlug(t *testing.T) {
	cause := errors.New(`ERROR: duplicate key value violates unique constraint "idx_posts_slug" (SQLSTATE 23505)`)
	apiErr := NewDatabaseError("create post", "post", cause)

	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("unexpected status: got %d want %d", apiErr.StatusCode, http.StatusConflict)
	}
	if apiErr.Field != "slug" {
		t.Fatalf("unexpected field: got %q want %q", apiErr.Field, "slug")
	}
	if got := apiErr.Fields["slug"]; len(got) != 1 || got[0] != "This slug is already in use." {
		t.Fatalf("unexpected field messages: %v", apiErr.Fields)
	}
	if !errors.Is(apiErr, ErrAlreadyExists) {
		t.Fatal("expected error to match ErrAlreadyExists")
	}
}

func TestNewDatabaseErrorDuplicateWithoutKnownColumn(t *testing.T) {
	cause := errors.New(`ERROR: duplicate key value violates unique constraint "idx_widgets_code" (SQLSTATE 23505)`)
	apiErr := NewDatabaseError("create widget", "widget", cause)

	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("unexpected status: got %d", apiErr.StatusCode)
	}
	if apiErr.Field != "" || apiErr.Fields != nil {
		t.Fatalf("no field should be flagged: field=%q fields=%v", apiErr.Field, apiErr.Fields)
	}
}

func TestNewDatabaseErrorRecordNotFound(t *testing.T) {
	apiErr := NewDatabaseError("find post", "post", gorm.ErrRecordNotFound)

	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", apiErr.StatusCode, http.StatusNotFound)
	}
	if !errors.Is(apiErr, ErrNotFound) {
		t.Fatal("expected error to match ErrNotFound")
	}
}

func TestNewDatabaseErrorForeignKey(t *testing.T) {
	cause := errors.New(`ERROR: insert or update on table "resumes" violates foreign key constraint "fk_resumes_media" (SQLSTATE 23503)`)
	apiErr := NewDatabaseError("create resume", "resume", cause)

	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", apiErr.StatusCode, http.StatusBadRequest)
	}
}

func TestNewDatabaseErrorConnection(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	apiErr := NewDatabaseError("find posts", "posts", cause)

	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: got %d want %d", apiErr.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestNewDatabaseErrorUnknownCause(t *testing.T) {
	apiErr := NewDatabaseError("find posts", "posts", errors.New("some driver hiccup"))

	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d want %d", apiErr.StatusCode, http.StatusInternalServerError)
	}
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	apiErr := NewValidationError(map[string][]string{"title": {"Title is required."}})

	if !IsValidation(apiErr) {
		t.Fatal("expected IsValidation to hold")
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d", apiErr.StatusCode)
	}
}
