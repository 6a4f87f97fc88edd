package api

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jmorel/portfolio-cms-backend/errs"
)

func TestWriteErrorRendersValidationFields(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errs.NewValidationError(map[string][]string{
		"slug": {"This slug is already in use."},
	}))

	if rec.Code != 400 {
		t.Fatalf("unexpected status: got %d", rec.Code)
	}

	var body struct {
		Status string              `json:"status"`
		Fields map[string][]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "error" {
		t.Fatalf("unexpected status field: %q", body.Status)
	}
	if got := body.Fields["slug"]; len(got) != 1 || got[0] != "This slug is already in use." {
		t.Fatalf("unexpected fields: %v", body.Fields)
	}
}

func TestWriteErrorHidesUnexpectedErrors(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errors.New("pq: connection refused at 10.0.0.5"))

	if rec.Code != 500 {
		t.Fatalf("unexpected status: got %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "10.0.0.5") || strings.Contains(body, "pq:") {
		t.Fatalf("internal detail leaked: %s", body)
	}
}
