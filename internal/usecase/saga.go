package usecase

import (
	"context"
	"log/slog"
)

// compensation is the undo action for one successfully booked sub-item.
// Undo reports whether the provider acknowledged the cancellation.
type compensation struct {
	label string
	undo  func(ctx context.Context) (bool, error)
}

// compensationStack collects undo actions during a single confirmation
// attempt. On a later booking failure the stack unwinds in reverse order, so
// the most recently booked sub-item is cancelled first.
type compensationStack struct {
	steps []compensation
}

func (s *compensationStack) push(label string, undo func(ctx context.Context) (bool, error)) {
	s.steps = append(s.steps, compensation{label: label, undo: undo})
}

func (s *compensationStack) unwind(ctx context.Context, logger *slog.Logger) {
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		ok, err := step.undo(ctx)
		if err != nil || !ok {
			// A failed compensation leaves the provider-side booking in
			// place; the confirmation number is kept so a retry skips it.
			logger.Warn("compensation failed, provider booking left in place",
				"item", step.label, "acknowledged", ok, "error", err)
		}
	}
	s.steps = nil
}
