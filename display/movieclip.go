// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"sort"

	"github.com/gogpu/swfkit"
)

// MovieClip is a display object with its own timeline and an ordered
// set of child display objects. It exclusively owns its children.
type MovieClip struct {
	base     Base
	children []DisplayObject
	timeline *Timeline

	// skinGroup marks the clip's children as mutually exclusive
	// alternates driven by SetSkin.
	skinGroup  bool
	activeSkin string
}

// NewMovieClip creates a movie clip at the given depth, owning the
// timeline.
func NewMovieClip(name string, depth uint16, timeline *Timeline) *MovieClip {
	if timeline == nil {
		timeline = NewTimeline(1)
	}
	timeline.clip = name
	return &MovieClip{base: newBase(name, depth), timeline: timeline}
}

// Base implements DisplayObject.
func (m *MovieClip) Base() *Base { return &m.base }

// Timeline returns the clip's timeline.
func (m *MovieClip) Timeline() *Timeline { return m.timeline }

// AddChild inserts a child, keeping children ordered by depth.
// A child at an occupied depth draws after its predecessor.
func (m *MovieClip) AddChild(child DisplayObject) {
	m.children = append(m.children, child)
	sort.SliceStable(m.children, func(i, j int) bool {
		return m.children[i].Base().Depth < m.children[j].Base().Depth
	})
}

// Children returns the depth-ordered children. The slice is owned by
// the clip; callers must not mutate it.
func (m *MovieClip) Children() []DisplayObject {
	return m.children
}

// ChildByName returns the first child with the given instance name.
func (m *MovieClip) ChildByName(name string) DisplayObject {
	for _, c := range m.children {
		if c.Base().Name == name {
			return c
		}
	}
	return nil
}

// Bounds implements DisplayObject: the union of every renderable
// child's bounds mapped through its local matrix.
func (m *MovieClip) Bounds() swfkit.Rect {
	b := swfkit.EmptyRect()
	for _, c := range m.children {
		if !c.Base().Renderable() {
			continue
		}
		b = b.Union(c.Bounds().Transform(c.Base().Matrix))
	}
	return b
}

// Advance implements DisplayObject: steps this clip's timeline, then
// recursively advances every active child. A child's own play, pause
// and loop state is independent and never altered by the parent.
func (m *MovieClip) Advance(steps int, sink *EventSink) {
	m.timeline.Advance(steps, sink)
	for _, c := range m.children {
		if c.Base().Active() {
			c.Advance(steps, sink)
		}
	}
}

// MarkSkinGroup designates this clip's children as mutually exclusive
// skins. Until a skin is selected all children stay active.
func (m *MovieClip) MarkSkinGroup() {
	m.skinGroup = true
}

// IsSkinGroup reports whether the clip hosts alternate skins.
func (m *MovieClip) IsSkinGroup() bool { return m.skinGroup }

// ActiveSkin returns the name of the selected skin, or "" if none has
// been selected yet.
func (m *MovieClip) ActiveSkin() string { return m.activeSkin }

// SetSkin activates the child whose name matches and deactivates every
// sibling: their timelines stop advancing and they are excluded from
// rendering. A name with no matching child is a reported no-op — the
// previously active skin stays active.
func (m *MovieClip) SetSkin(name string) bool {
	var match DisplayObject
	for _, c := range m.children {
		if c.Base().Name == name {
			match = c
			break
		}
	}
	if match == nil {
		swfkit.Logger().Warn("skin not found, keeping current",
			"clip", m.base.Name, "skin", name, "active", m.activeSkin)
		return false
	}
	for _, c := range m.children {
		c.Base().active = c == match
	}
	match.Base().Visible = true
	m.activeSkin = name
	return true
}
