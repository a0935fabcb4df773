// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"testing"

	"cogentcore.org/manip/scene"
	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var ls Listeners
	var got []string
	ls.Add(Drag, func(ev *Event) { got = append(got, "first") })
	ls.Add(Drag, func(ev *Event) { got = append(got, "second") })
	ls.Add(DragEnd, func(ev *Event) {
		got = append(got, "end "+ev.Node.Name)
		ev.SetHandled()
	})
	ls.Add(DragEnd, func(ev *Event) { got = append(got, "override") })

	ls.Send(Drag, nil)
	assert.Equal(t, []string{"second", "first"}, got)

	got = nil
	ls.Send(DragEnd, scene.NewNode(nil, "box"))
	assert.Equal(t, []string{"override", "end box"}, got)

	got = nil
	ls.Send(HoverOn, nil)
	assert.Empty(t, got)
	assert.Equal(t, "SelectionChanged", SelectionChanged.String())
}
