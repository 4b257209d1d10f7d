package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// Response is the envelope a submitted session is delivered in
type Response struct {
	ID          string          `json:"id" yaml:"id"`
	SessionID   string          `json:"session_id" yaml:"session_id"`
	Catalog     string          `json:"catalog" yaml:"catalog"`
	Title       string          `json:"title,omitempty" yaml:"title,omitempty"`
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Mode        domain.Mode     `json:"mode" yaml:"mode"`
	SubmittedAt time.Time       `json:"submitted_at" yaml:"submitted_at"`
	Answers     survey.Snapshot `json:"answers" yaml:"answers"`
}

// Meta identifies the session a response belongs to
type Meta struct {
	SessionID   string
	Catalog     *survey.Catalog
	Fingerprint string
	Mode        domain.Mode
}

// NewResponse wraps snap in an envelope with a fresh id
func NewResponse(meta Meta, snap survey.Snapshot) Response {
	return Response{
		ID:          uuid.New().String(),
		SessionID:   meta.SessionID,
		Catalog:     meta.Catalog.Name(),
		Title:       meta.Catalog.Title(),
		Fingerprint: meta.Fingerprint,
		Mode:        meta.Mode,
		SubmittedAt: time.Now().UTC(),
		Answers:     snap,
	}
}

// Sink receives submitted responses
type Sink interface {
	Deliver(ctx context.Context, r Response) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, r Response) error

// Deliver calls f
func (f SinkFunc) Deliver(ctx context.Context, r Response) error {
	return f(ctx, r)
}
