// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"fmt"
	"strings"

	"github.com/gogpu/swfkit"
)

// PlayState is a timeline's play/pause state.
type PlayState uint8

const (
	// Playing advances one frame per logical step.
	Playing PlayState = iota
	// Paused ignores Advance calls.
	Paused
)

// String returns a human-readable name for the play state.
func (s PlayState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// skinLabelPrefix marks frame labels that designate skin frames in the
// authoring convention.
const skinLabelPrefix = "skin_"

// Timeline is the frame state machine of one movie clip instance:
// current frame, play state, loop policy, label lookup and frame
// payloads. The current frame index is always valid; advancing past the
// last frame either wraps to 0 (looping) or clamps and fires a
// completion event once per ended transition.
//
// The timeline counts logical steps, not wall-clock time; the authored
// frame rate lives in the player.
type Timeline struct {
	clip     string
	total    int
	labels   map[string]int
	payloads map[int]any
	frame    int
	state    PlayState
	loop     bool
	ended    bool
}

// NewTimeline creates a playing timeline with the given frame count.
// Timelines have at least one frame.
func NewTimeline(totalFrames int) *Timeline {
	if totalFrames < 1 {
		totalFrames = 1
	}
	return &Timeline{
		total:    totalFrames,
		labels:   make(map[string]int),
		payloads: make(map[int]any),
	}
}

// SetLabel maps a label to a frame index. Labels are unique; frames may
// carry several labels. Out-of-range frames clamp.
func (t *Timeline) SetLabel(label string, frame int) {
	t.labels[label] = t.clampFrame(frame)
}

// AttachPayload attaches decoder frame data to a frame index. Reaching
// the frame emits a FrameEvent carrying the payload.
func (t *Timeline) AttachPayload(frame int, payload any) {
	t.payloads[t.clampFrame(frame)] = payload
}

// TotalFrames returns the frame count.
func (t *Timeline) TotalFrames() int { return t.total }

// CurrentFrame returns the 0-based current frame index.
func (t *Timeline) CurrentFrame() int { return t.frame }

// State returns the play/pause state.
func (t *Timeline) State() PlayState { return t.state }

// Looping returns the loop flag.
func (t *Timeline) Looping() bool { return t.loop }

// Ended reports whether a non-looping timeline has crossed its last
// frame. Seeking clears the ended state.
func (t *Timeline) Ended() bool { return t.ended }

// Play resumes advancing.
func (t *Timeline) Play() { t.state = Playing }

// Pause stops advancing without touching the current frame.
func (t *Timeline) Pause() { t.state = Paused }

// SetLoop sets the loop policy.
func (t *Timeline) SetLoop(loop bool) { t.loop = loop }

// LabelFrame resolves a label to its frame index.
func (t *Timeline) LabelFrame(label string) (int, bool) {
	frame, ok := t.labels[label]
	return frame, ok
}

// SkinFrames returns the skin-convention labels (prefix "skin_") mapped
// to their frames, with the prefix stripped.
func (t *Timeline) SkinFrames() map[string]int {
	out := make(map[string]int)
	for label, frame := range t.labels {
		if strings.HasPrefix(label, skinLabelPrefix) {
			out[strings.TrimPrefix(label, skinLabelPrefix)] = frame
		}
	}
	return out
}

// Advance steps the timeline by the given number of logical frames.
// Paused or ended timelines ignore the call. Every frame actually
// reached that carries a payload emits a FrameEvent, in index order;
// crossing the end of a non-looping timeline clamps at the last frame
// and emits one CompleteEvent before returning.
func (t *Timeline) Advance(steps int, sink *EventSink) {
	if t.state == Paused || t.ended {
		return
	}
	for i := 0; i < steps; i++ {
		if t.frame == t.total-1 {
			if !t.loop {
				t.ended = true
				sink.push(CompleteEvent{Clip: t.clip})
				return
			}
			t.frame = 0
		} else {
			t.frame++
		}
		t.emitFrame(sink)
	}
}

// SeekFrame jumps to a frame index, clamping out-of-range values.
// Seeking clears the ended state, emits the reached frame's event if it
// carries a payload, and never emits a completion event, even when it
// lands on the last frame.
func (t *Timeline) SeekFrame(frame int, sink *EventSink) {
	t.frame = t.clampFrame(frame)
	t.ended = false
	t.emitFrame(sink)
}

// SeekLabel resolves a label and seeks to its frame. An unknown label
// fails with ErrUnknownLabel and leaves the current frame unchanged.
func (t *Timeline) SeekLabel(label string, sink *EventSink) error {
	frame, ok := t.labels[label]
	if !ok {
		return fmt.Errorf("%w: %q", swfkit.ErrUnknownLabel, label)
	}
	t.SeekFrame(frame, sink)
	return nil
}

// emitFrame pushes the current frame's event if it has a payload.
func (t *Timeline) emitFrame(sink *EventSink) {
	if payload, ok := t.payloads[t.frame]; ok {
		sink.push(FrameEvent{Clip: t.clip, Frame: t.frame, Payload: payload})
	}
}

// clampFrame restricts an index to [0, total-1].
func (t *Timeline) clampFrame(frame int) int {
	if frame < 0 {
		return 0
	}
	if frame >= t.total {
		return t.total - 1
	}
	return frame
}
