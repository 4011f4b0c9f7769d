// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package player drives a movie instance in wall-clock time: it
// converts elapsed time to timeline steps at the authored frame rate,
// dispatches timeline events after each traversal, and renders frames
// through the software backend.
package player

import (
	"time"

	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/display"
	"github.com/gogpu/swfkit/render"
)

// DefaultFrameRate is used when the decoded header carries no rate.
const DefaultFrameRate = 24

// Player owns one movie instance: the root clip, the time accumulator
// that maps wall-clock time to whole timeline steps, event subscriptions
// and the renderer.
//
// A player confines its tree to one goroutine. Event handlers run after
// the traversal that raised them, from stable tree state; playback calls
// made inside a handler are queued and applied at the start of the next
// tick rather than mid-dispatch.
type Player struct {
	root      *display.MovieClip
	frameRate float32

	accumulator float32
	sink        display.EventSink

	renderer *render.SoftwareRenderer
	opts     render.Options

	onFrame    []func(display.FrameEvent)
	onComplete []func(display.CompleteEvent)

	dispatching bool
	queued      []func()
}

// New creates a player for a validated root clip. Non-positive frame
// rates use DefaultFrameRate.
func New(root *display.MovieClip, frameRate float32, opts render.Options) (*Player, error) {
	if err := display.Validate(root); err != nil {
		return nil, err
	}
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &Player{
		root:      root,
		frameRate: frameRate,
		renderer:  render.NewSoftwareRenderer(opts),
		opts:      opts,
	}, nil
}

// Root returns the root movie clip.
func (p *Player) Root() *display.MovieClip { return p.root }

// FrameRate returns the playback rate in frames per second.
func (p *Player) FrameRate() float32 { return p.frameRate }

// OnFrame subscribes to frame events from any clip in the tree.
func (p *Player) OnFrame(fn func(display.FrameEvent)) {
	p.onFrame = append(p.onFrame, fn)
}

// OnComplete subscribes to completion events from any clip in the tree.
func (p *Player) OnComplete(fn func(display.CompleteEvent)) {
	p.onComplete = append(p.onComplete, fn)
}

// Play resumes the root timeline.
func (p *Player) Play() {
	p.do(func() { p.root.Timeline().Play() })
}

// Pause stops the root timeline without touching the current frame.
func (p *Player) Pause() {
	p.do(func() { p.root.Timeline().Pause() })
}

// SetLoop sets the root timeline's loop policy.
func (p *Player) SetLoop(loop bool) {
	p.do(func() { p.root.Timeline().SetLoop(loop) })
}

// SeekFrame jumps the root timeline to a frame, clamping out-of-range
// indices. Frame events raised by the seek are dispatched on the next
// Advance.
func (p *Player) SeekFrame(frame int) {
	p.do(func() { p.root.Timeline().SeekFrame(frame, &p.sink) })
}

// SeekLabel jumps the root timeline to a labeled frame. Unknown labels
// fail with swfkit.ErrUnknownLabel and leave playback untouched.
// Inside an event handler the seek is deferred and its error only
// logged.
func (p *Player) SeekLabel(label string) error {
	if p.dispatching {
		p.queued = append(p.queued, func() {
			if err := p.root.Timeline().SeekLabel(label, &p.sink); err != nil {
				swfkit.Logger().Warn("deferred seek failed", "label", label, "err", err)
			}
		})
		return nil
	}
	return p.root.Timeline().SeekLabel(label, &p.sink)
}

// SetSkin selects a skin on the first skin-group clip found by name, or
// on the root when name is empty. Returns false when no matching skin
// exists; the previous skin stays active.
func (p *Player) SetSkin(clipName, skin string) bool {
	clip := p.root
	if clipName != "" {
		child := p.root.ChildByName(clipName)
		mc, ok := child.(*display.MovieClip)
		if !ok {
			swfkit.Logger().Warn("skin target is not a movie clip", "clip", clipName)
			return false
		}
		clip = mc
	}
	return clip.SetSkin(skin)
}

// Completed reports whether the root timeline has ended. Looping roots
// never complete.
func (p *Player) Completed() bool {
	return p.root.Timeline().Ended()
}

// do runs a playback mutation now, or queues it when called from inside
// event dispatch.
func (p *Player) do(fn func()) {
	if p.dispatching {
		p.queued = append(p.queued, fn)
		return
	}
	fn()
}

// Advance moves playback forward by elapsed wall-clock time. Fractional
// frames accumulate; only whole steps advance the tree. Events collected
// during the traversal are dispatched after it finishes.
func (p *Player) Advance(dt time.Duration) {
	p.runQueued()

	p.accumulator += float32(dt.Seconds()) * p.frameRate
	steps := int(p.accumulator)
	p.accumulator -= float32(steps)
	if steps > 0 {
		p.root.Advance(steps, &p.sink)
	}
	p.dispatch()
}

// Step advances exactly n timeline steps, bypassing the wall-clock
// accumulator. Used by tests and frame-exact tooling.
func (p *Player) Step(n int) {
	p.runQueued()
	if n > 0 {
		p.root.Advance(n, &p.sink)
	}
	p.dispatch()
}

func (p *Player) runQueued() {
	queued := p.queued
	p.queued = nil
	for _, fn := range queued {
		fn()
	}
}

func (p *Player) dispatch() {
	events := p.sink.Drain()
	if len(events) == 0 {
		return
	}
	p.dispatching = true
	defer func() { p.dispatching = false }()
	for _, e := range events {
		switch ev := e.(type) {
		case display.FrameEvent:
			for _, fn := range p.onFrame {
				fn(ev)
			}
		case display.CompleteEvent:
			for _, fn := range p.onComplete {
				fn(ev)
			}
		}
	}
}

// Render builds and rasterizes the current frame at the given size.
func (p *Player) Render(width, height int) *swfkit.Pixmap {
	list := render.BuildFrame(p.root, &p.opts)
	return p.renderer.Render(list, width, height)
}

// RenderInto builds the current frame and rasterizes it over an
// existing target.
func (p *Player) RenderInto(dst *swfkit.Pixmap) {
	list := render.BuildFrame(p.root, &p.opts)
	p.renderer.RenderInto(dst, list)
}
