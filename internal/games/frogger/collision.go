package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// resolveCollisions checks the frog against every collider in board order
// and stops at the first one that handles the contact. Colliders that do not
// touch the frog are skipped.
func (w *World) resolveCollisions() {
	for _, c := range w.colliders {
		if w.frog == nil {
			return
		}

		code := core.Classify(w.frog.Box, c.Bounds())
		if code == core.OverlapNone {
			continue
		}
		if c.OnCollide(w, code) == Handled {
			return
		}
	}
}
