// Package selection tracks multi-select state over filtered positions.
//
// Positions index the currently visible (post-filter) sequence, not the
// underlying entry store. Whoever recomputes the filtered view must clear
// the selection in the same operation, since every held position becomes
// meaningless.
package selection

import "sort"

// Model is the selection set plus the anchor used for range gestures.
type Model struct {
	members map[int]bool
	anchor  int // -1 = no anchor yet
}

// New returns an empty selection with no anchor.
func New() Model {
	return Model{members: make(map[int]bool), anchor: -1}
}

// Click replaces the selection with the single position i and anchors there.
func (m *Model) Click(i int) {
	clear(m.members)
	m.members[i] = true
	m.anchor = i
}

// Toggle flips membership of position i and anchors there.
func (m *Model) Toggle(i int) {
	if m.members[i] {
		delete(m.members, i)
	} else {
		m.members[i] = true
	}
	m.anchor = i
}

// Range replaces the selection with the inclusive span between the anchor
// and i, in either click order. The anchor stays put, so repeated range
// gestures extend or contract from the original anchor. Without an anchor
// this degrades to a plain click.
func (m *Model) Range(i int) {
	if m.anchor < 0 {
		m.Click(i)
		return
	}
	lo, hi := m.anchor, i
	if lo > hi {
		lo, hi = hi, lo
	}
	clear(m.members)
	for n := lo; n <= hi; n++ {
		m.members[n] = true
	}
}

// Clear empties the selection and forgets the anchor.
func (m *Model) Clear() {
	clear(m.members)
	m.anchor = -1
}

// Contains reports whether position i is selected.
func (m Model) Contains(i int) bool { return m.members[i] }

// Count returns the number of selected positions.
func (m Model) Count() int { return len(m.members) }

// Anchor returns the current anchor position, or -1.
func (m Model) Anchor() int { return m.anchor }

// Selected returns the selected positions in ascending order.
func (m Model) Selected() []int {
	out := make([]int, 0, len(m.members))
	for i := range m.members {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
