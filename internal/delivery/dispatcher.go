package delivery

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/felixgeelhaar/questionnaire/internal/log"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// Dispatcher fans a submitted snapshot out to every sink. It is the session's
// completion collaborator: the session calls it once and never retries.
type Dispatcher struct {
	sinks  []Sink
	logger *log.Logger

	mu       sync.Mutex
	response *Response
	err      error
}

// NewDispatcher creates a dispatcher over sinks; a nil logger discards
func NewDispatcher(logger *log.Logger, sinks ...Sink) *Dispatcher {
	if logger == nil {
		logger = log.Discard()
	}
	return &Dispatcher{sinks: sinks, logger: logger}
}

// Deliver sends r to every sink, continuing past failures
func (d *Dispatcher) Deliver(ctx context.Context, r Response) error {
	var errs []error
	for _, sink := range d.sinks {
		if err := sink.Deliver(ctx, r); err != nil {
			d.logger.WithError(err).Error("delivery failed", "response_id", r.ID)
			errs = append(errs, err)
		}
	}
	d.logger.Info("response delivered", "response_id", r.ID, "sinks", len(d.sinks), "failed", len(errs))
	return stderrors.Join(errs...)
}

// Completion returns a callback for survey.WithCompletion. The outcome is
// available from Result once the session has been submitted.
func (d *Dispatcher) Completion(ctx context.Context, meta Meta) func(survey.Snapshot) {
	return func(snap survey.Snapshot) {
		r := NewResponse(meta, snap)
		err := d.Deliver(ctx, r)

		d.mu.Lock()
		defer d.mu.Unlock()
		d.response = &r
		d.err = err
	}
}

// Result returns the delivered response, if any, and the delivery error
func (d *Dispatcher) Result() (*Response, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.response, d.err
}
