package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Revalidator tells the frontend which rendered pages went stale after a
// mutation. Best-effort: a dead webhook never fails the admin action.
type Revalidator struct {
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
}

// NewRevalidator returns a no-op revalidator when the endpoint is empty.
func NewRevalidator(endpoint string) *Revalidator {
	return &Revalidator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   log.With().Str("service", "revalidator").Logger(),
	}
}

type revalidateRequest struct {
	Paths []string `json:"paths"`
}

// Revalidate posts the affected public paths to the frontend's revalidation
// webhook.
func (r *Revalidator) Revalidate(paths ...string) {
	if r.endpoint == "" || len(paths) == 0 {
		return
	}

	body, err := json.Marshal(revalidateRequest{Paths: paths})
	if err != nil {
		r.logger.Error().Err(err).Msg("Error marshaling revalidation request")
		return
	}

	resp, err := r.client.Post(r.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		r.logger.Error().Err(err).Strs("paths", paths).Msg("Error calling revalidation webhook")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Error().Int("status", resp.StatusCode).Strs("paths", paths).
			Msg("Revalidation webhook returned non-200 status")
	}
}
