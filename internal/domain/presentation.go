package domain

import (
	"fmt"
)

// PresentationState is the state the discovery surface should render.
type PresentationState string

const (
	// StateIdle means no recommendation request has been started.
	StateIdle PresentationState = "idle"

	// StateLoading means a request is in flight.
	StateLoading PresentationState = "loading"

	// StateReady means recommendations are available to render.
	StateReady PresentationState = "ready"

	// StateEmpty means the request completed with nothing to show; the
	// caller hides the surface rather than rendering an empty panel.
	StateEmpty PresentationState = "empty"
)

// DiscoveryLifecycle is the explicit state machine behind the discovery
// surface. Transitions are driven by the start of a recommendation request
// and by the completion of its fetches, replacing implicit render-driven
// control flow so the sequencing is testable in isolation.
type DiscoveryLifecycle struct {
	state PresentationState
}

func NewDiscoveryLifecycle() *DiscoveryLifecycle {
	return &DiscoveryLifecycle{state: StateIdle}
}

func (l *DiscoveryLifecycle) State() PresentationState {
	return l.state
}

// Begin marks a new recommendation request in flight. A request may start
// from idle or restart over a previously completed one, but not while
// another request is still loading.
func (l *DiscoveryLifecycle) Begin() error {
	if l.state == StateLoading {
		return fmt.Errorf("recommendation request already in flight")
	}
	l.state = StateLoading
	return nil
}

// Complete records the completion of the fetches backing the in-flight
// request, with the number of recommendations produced.
func (l *DiscoveryLifecycle) Complete(count int) error {
	if l.state != StateLoading {
		return fmt.Errorf("cannot complete from state [%s]", l.state)
	}
	if count > 0 {
		l.state = StateReady
	} else {
		l.state = StateEmpty
	}
	return nil
}

// Fail records an upstream failure. Failures are absorbed as "nothing to
// show", so the surface lands in the same state as an empty result.
func (l *DiscoveryLifecycle) Fail() error {
	if l.state != StateLoading {
		return fmt.Errorf("cannot fail from state [%s]", l.state)
	}
	l.state = StateEmpty
	return nil
}
