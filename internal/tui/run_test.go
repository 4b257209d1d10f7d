package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
)

func TestRunRejectsUnknownStyle(t *testing.T) {
	s := newSession(t, domain.ModeSequential)

	_, err := Run(context.Background(), s, domain.Style("poster"))
	assert.Error(t, err)
}
