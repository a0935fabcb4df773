// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointer

import (
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// Sample is one raw pointer reading, in pixel coordinates
// relative to the top-left of the viewport.
type Sample struct {
	Type    Types
	Where   image.Point
	Buttons int
	Mods    key.Modifiers
}

// Tracker converts raw samples into [Frame]s, correlating pointers across
// frames by mutual nearest neighbor. It also captures the mouse while a
// button is held: hover is suppressed and further presses are ignored
// until every button is released.
type Tracker struct {

	// Size is the viewport size in pixels, used for normalization.
	Size image.Point

	// Normalized converts positions into -1..1 device coordinates.
	Normalized bool

	pointers []*Pointer
	nextID   int

	// mouse capture state
	mouseHeld int
	mouseDown bool
}

// NewTracker returns a new normalizing tracker for a viewport of the given size.
func NewTracker(size image.Point) *Tracker {
	return &Tracker{Size: size, Normalized: true}
}

// Resize sets the viewport size.
func (tr *Tracker) Resize(size image.Point) {
	tr.Size = size
}

// Pointers returns the pointers of the most recent frame.
func (tr *Tracker) Pointers() []*Pointer {
	return tr.pointers
}

// MouseCaptured returns true while a mouse button is held.
func (tr *Tracker) MouseCaptured() bool {
	return tr.mouseDown
}

// Normalize returns the given pixel position in tracker coordinates.
func (tr *Tracker) Normalize(where image.Point) math32.Vector2 {
	pos := math32.FromPoint(where)
	if !tr.Normalized || tr.Size.X <= 0 || tr.Size.Y <= 0 {
		return pos
	}
	pos.X = pos.X/float32(tr.Size.X)*2 - 1
	pos.Y = -(pos.Y/float32(tr.Size.Y)*2 - 1)
	return pos
}

// Update starts a new frame of the given type from the given samples.
// With remove, all pointers are released and reported in Removed.
func (tr *Tracker) Update(typ FrameTypes, samples []Sample, remove bool) *Frame {
	previous := tr.pointers
	tr.pointers = nil
	if !remove {
		for _, s := range samples {
			buttons := s.Buttons
			if s.Type == Touch && buttons == 0 {
				buttons = ButtonPrimary
			}
			pos := tr.Normalize(s.Where)
			p := &Pointer{
				ID:       -1,
				Type:     s.Type,
				Position: pos,
				Previous: pos,
				Start:    pos,
				Button:   ButtonFromMask(buttons),
				Buttons:  buttons,
				Mods:     s.Mods,
			}
			tr.pointers = append(tr.pointers, p)
		}
		previous = slices.Clone(previous)
		for _, p := range tr.pointers {
			if len(previous) == 0 {
				break
			}
			closest := closestTo(p, previous)
			if closestTo(closest, tr.pointers) != p {
				continue
			}
			p.follow(closest)
			previous = slices.DeleteFunc(previous, func(q *Pointer) bool { return q == closest })
		}
		for _, p := range tr.pointers {
			if p.ID < 0 {
				p.ID = tr.nextID
				tr.nextID++
			}
		}
	}
	fr := &Frame{Type: typ, Pointers: tr.pointers, Removed: previous}
	slog.Debug("pointer frame", "frame", fr)
	return fr
}

// closestTo returns the pointer in the list closest to the given one.
// The list must not be empty.
func closestTo(p *Pointer, list []*Pointer) *Pointer {
	var closest *Pointer
	minDist := math32.Inf(1)
	for _, q := range list {
		d := p.Position.DistanceTo(q.Position)
		if d < minDist {
			closest = q
			minDist = d
		}
	}
	return closest
}

// MouseEvent converts the given mouse event into a frame, applying mouse
// capture. It returns nil for events that produce no frame: a second
// press while a button is already held, a release that leaves other
// buttons held, and event types other than mouse down, up, move and drag.
func (tr *Tracker) MouseEvent(ev *events.Mouse) *Frame {
	s := Sample{Type: Mouse, Where: ev.Where, Mods: ev.Mods}
	switch ev.Type() {
	case events.MouseDown:
		tr.mouseHeld |= MaskFromButton(ev.Button)
		if tr.mouseDown {
			return nil
		}
		tr.mouseDown = true
		s.Buttons = tr.mouseHeld
		fr := tr.Update(FrameDown, []Sample{s}, false)
		fr.First().restart()
		return fr
	case events.MouseUp:
		tr.mouseHeld &^= MaskFromButton(ev.Button)
		if !tr.mouseDown || tr.mouseHeld != 0 {
			return nil
		}
		tr.mouseDown = false
		return tr.Update(FrameUp, nil, true)
	case events.MouseMove, events.MouseDrag:
		if tr.mouseDown {
			s.Buttons = tr.mouseHeld
			return tr.Update(FrameMove, []Sample{s}, false)
		}
		fr := tr.Update(FrameHover, []Sample{s}, false)
		fr.First().restart()
		return fr
	}
	return nil
}

// Release ends mouse capture and releases all pointers,
// returning the resulting up frame.
func (tr *Tracker) Release() *Frame {
	tr.mouseHeld = 0
	tr.mouseDown = false
	return tr.Update(FrameUp, nil, true)
}
