// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

// Event is a timeline notification collected during Advance or Seek.
// The variant set is closed: FrameEvent and CompleteEvent.
type Event interface {
	eventMarker()
}

// FrameEvent fires when a frame with attached script data is reached,
// whether by advancing or seeking. Events for frames stepped over in a
// single multi-frame advance fire in index order.
type FrameEvent struct {
	// Clip is the instance name of the movie clip whose timeline fired.
	Clip string
	// Frame is the 0-based frame index reached.
	Frame int
	// Payload is the decoder-attached frame data, opaque to the core.
	Payload any
}

func (FrameEvent) eventMarker() {}

// CompleteEvent fires exactly once each time a non-looping timeline
// crosses its last frame and enters the ended state. Seeking onto the
// last frame does not fire it.
type CompleteEvent struct {
	Clip string
}

func (CompleteEvent) eventMarker() {}

// EventSink buffers events raised during a tree traversal. The walk
// never delivers callbacks mid-traversal; the owner drains the sink
// once the traversal finishes and dispatches from stable state.
type EventSink struct {
	events []Event
}

// push appends an event in firing order.
func (s *EventSink) push(e Event) {
	if s != nil {
		s.events = append(s.events, e)
	}
}

// Drain returns the buffered events in firing order and empties the
// sink.
func (s *EventSink) Drain() []Event {
	out := s.events
	s.events = nil
	return out
}

// Len returns the number of buffered events.
func (s *EventSink) Len() int {
	return len(s.events)
}
