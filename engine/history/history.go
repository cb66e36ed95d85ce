package history

import (
	"errors"

	"github.com/spaghettifunk/anima-tools/engine/containers"
	"github.com/spaghettifunk/anima-tools/engine/core"
)

const DefaultMaxGroups = 64

var ErrNothingToUndo = errors.New("nothing to undo")

// Recordable is implemented by objects whose state can be captured before
// a mutation. Snapshot returns a function that restores the captured state.
type Recordable interface {
	Snapshot() func()
}

type step struct {
	label string
	undo  func()
}

// Group is a set of steps reverted together by a single Undo.
type Group struct {
	ID    int
	Label string
	steps []step
}

func (g *Group) Len() int {
	return len(g.steps)
}

// History is an in-memory, bounded undo stack. Each recorded step opens a
// new group; CollapseUndoOperations merges groups so a batch edit undoes
// as one unit. Groups recorded after CurrentGroup stay pending, outside
// the bound, until the next batch starts or the history is read, so a
// batch never evicts its own steps. History is not safe for concurrent use.
type History struct {
	groups    *containers.RingQueue[*Group]
	pending   []*Group
	batching  bool
	nextGroup int
}

func New(maxGroups int) *History {
	if maxGroups <= 0 {
		maxGroups = DefaultMaxGroups
	}
	return &History{
		groups: containers.NewRingQueue[*Group](maxGroups),
	}
}

// CurrentGroup returns the id the next recorded step will be assigned and
// opens a batch. Capture it before a batch and pass it to
// CollapseUndoOperations after.
func (h *History) CurrentGroup() int {
	h.commit()
	h.batching = true
	return h.nextGroup
}

// RecordObjects snapshots every object before it is mutated.
func (h *History) RecordObjects(label string, objects ...Recordable) {
	if len(objects) == 0 {
		return
	}
	restores := make([]func(), 0, len(objects))
	for _, o := range objects {
		if o == nil {
			continue
		}
		restores = append(restores, o.Snapshot())
	}
	h.push(label, func() {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
	})
}

// RegisterCreatedObjectUndo records that an object was created; undoing the
// step calls destroy.
func (h *History) RegisterCreatedObjectUndo(label string, destroy func()) {
	if destroy == nil {
		return
	}
	h.push(label, destroy)
}

// CollapseUndoOperations merges every group with an id >= group into one.
// The batch stays open so later steps of the same call can still join it.
func (h *History) CollapseUndoOperations(group int) {
	var merged []*Group
	for len(h.pending) > 0 && h.pending[len(h.pending)-1].ID >= group {
		merged = append(merged, h.pending[len(h.pending)-1])
		h.pending = h.pending[:len(h.pending)-1]
	}
	for !h.groups.IsEmpty() {
		back, _ := h.groups.Back()
		if back.ID < group {
			break
		}
		g, _ := h.groups.Pop()
		merged = append(merged, g)
	}
	if len(merged) == 0 {
		return
	}
	// merged is newest first
	first := merged[len(merged)-1]
	collapsed := &Group{ID: first.ID, Label: first.Label}
	for i := len(merged) - 1; i >= 0; i-- {
		collapsed.steps = append(collapsed.steps, merged[i].steps...)
	}
	h.add(collapsed)
	core.LogDebug("collapsed %d undo groups into group %d (%s)", len(merged), collapsed.ID, collapsed.Label)
}

// Undo reverts the most recent group and returns its label.
func (h *History) Undo() (string, error) {
	h.commit()
	g, err := h.groups.Pop()
	if err != nil {
		return "", ErrNothingToUndo
	}
	for i := len(g.steps) - 1; i >= 0; i-- {
		g.steps[i].undo()
	}
	core.LogDebug("undo group %d (%s): %d steps reverted", g.ID, g.Label, len(g.steps))
	return g.Label, nil
}

// Len returns the number of undoable groups, including an open batch.
func (h *History) Len() int {
	return h.groups.Len() + len(h.pending)
}

func (h *History) push(label string, undo func()) {
	g := &Group{
		ID:    h.nextGroup,
		Label: label,
		steps: []step{{label: label, undo: undo}},
	}
	h.nextGroup++
	h.add(g)
}

func (h *History) add(g *Group) {
	if h.batching {
		h.pending = append(h.pending, g)
		return
	}
	if dropped, evicted := h.groups.Push(g); evicted {
		core.LogDebug("undo history full, dropping group %d (%s)", dropped.ID, dropped.Label)
	}
}

// commit closes the open batch and moves its groups under the bound.
func (h *History) commit() {
	h.batching = false
	for _, g := range h.pending {
		h.add(g)
	}
	h.pending = nil
}
