package dashboard

import (
	"sync"
	"sync/atomic"

	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/internal/eventbus"
)

// Service keeps the View of the selected window. Concurrent SetWindow calls
// are ordered by the generation they draw on entry; a View computed for an
// older generation never replaces a newer one.
type Service struct {
	builder *Builder
	bus     *eventbus.Bus[Refresh]

	gen atomic.Uint64

	mu      sync.RWMutex
	bundle  model.Bundle
	current View
	stored  uint64
}

// NewService returns a Service over bundle. Refreshes are published on bus
// when it is non-nil.
func NewService(b *Builder, bundle model.Bundle, bus *eventbus.Bus[Refresh]) *Service {
	if b == nil {
		b = &Builder{}
	}
	return &Service{builder: b, bundle: bundle, bus: bus}
}

// SetWindow builds the View for w and stores it unless a later call already
// stored its own. The View built for w is returned either way, with a flag
// telling whether it became current.
func (s *Service) SetWindow(w model.Window) (View, bool) {
	gen := s.gen.Add(1)
	s.mu.RLock()
	bundle := s.bundle
	s.mu.RUnlock()

	v := s.builder.Build(bundle, w)

	s.mu.Lock()
	if gen <= s.stored {
		s.mu.Unlock()
		s.builder.logger().Debugf("discarding stale %s view (generation %d, current %d)", w, gen, s.stored)
		return v, false
	}
	s.current = v
	s.stored = gen
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(Refresh{Generation: gen, RunID: v.RunID, Range: w, At: v.GeneratedAt})
	}
	return v, true
}

// View builds the View for w without touching the current one.
func (s *Service) View(w model.Window) View {
	s.mu.RLock()
	bundle := s.bundle
	s.mu.RUnlock()
	return s.builder.Build(bundle, w)
}

// Current returns the stored View. The flag is false until a SetWindow call
// has completed.
func (s *Service) Current() (View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.stored > 0
}

// Bundle returns the dataset the service analyses.
func (s *Service) Bundle() model.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Generation returns the generation of the stored View.
func (s *Service) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stored
}
