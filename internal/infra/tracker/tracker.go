package tracker

import (
	"log/slog"
	"sync"

	"tripbook-reservations/internal/usecase"
)

// SlogTracker records flow/step transitions as structured log events. It is
// the only diagnostics channel inside the booking flows; business logic does
// no ad hoc logging of progress.
type SlogTracker struct {
	logger *slog.Logger

	mu    sync.Mutex
	flow  string
	steps map[string]bool
}

var _ usecase.ProgressTracker = (*SlogTracker)(nil)

func NewSlogTracker(logger *slog.Logger) *SlogTracker {
	return &SlogTracker{logger: logger}
}

func (t *SlogTracker) StartFlow(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.flow = name
	t.steps = make(map[string]bool)
	t.logger.Info("flow started", "flow", name)
}

func (t *SlogTracker) UpdateStep(name string, completed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.steps == nil {
		t.steps = make(map[string]bool)
	}
	t.steps[name] = completed
	t.logger.Info("flow step", "flow", t.flow, "step", name, "completed", completed)
}

func (t *SlogTracker) CompleteFlow(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger.Info("flow completed", "flow", name, "steps", len(t.steps))
	t.flow = ""
	t.steps = nil
}

func (t *SlogTracker) ResetFlow(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.flow == name {
		t.flow = ""
		t.steps = nil
	}
	t.logger.Info("flow reset", "flow", name)
}
