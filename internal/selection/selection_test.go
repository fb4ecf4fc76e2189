package selection

import "testing"

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClickReplacesSelection(t *testing.T) {
	m := New()
	m.Click(3)
	m.Click(7)

	if !equalInts(m.Selected(), []int{7}) {
		t.Errorf("Selected() = %v, want [7]", m.Selected())
	}
	if m.Anchor() != 7 {
		t.Errorf("Anchor() = %d, want 7", m.Anchor())
	}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	m := New()
	m.Click(2)

	m.Toggle(5)
	if !m.Contains(5) {
		t.Fatal("position 5 should be selected after toggle")
	}
	m.Toggle(5)
	if m.Contains(5) {
		t.Error("position 5 should be deselected after second toggle")
	}
	if !m.Contains(2) {
		t.Error("toggling 5 must not disturb position 2")
	}
}

func TestToggleMovesAnchor(t *testing.T) {
	m := New()
	m.Click(1)
	m.Toggle(8)

	if m.Anchor() != 8 {
		t.Errorf("Anchor() = %d, want 8", m.Anchor())
	}
}

func TestRangeSpansEitherDirection(t *testing.T) {
	tests := []struct {
		name   string
		anchor int
		click  int
		want   []int
	}{
		{name: "forward", anchor: 3, click: 6, want: []int{3, 4, 5, 6}},
		{name: "backward", anchor: 10, click: 3, want: []int{3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "degenerate", anchor: 4, click: 4, want: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Click(tt.anchor)
			m.Range(tt.click)
			if !equalInts(m.Selected(), tt.want) {
				t.Errorf("Selected() = %v, want %v", m.Selected(), tt.want)
			}
		})
	}
}

func TestRangeReplacesAndKeepsAnchor(t *testing.T) {
	m := New()
	m.Click(5)
	m.Range(9)
	m.Range(7)

	// The second range contracts from the original anchor, not from 9.
	if !equalInts(m.Selected(), []int{5, 6, 7}) {
		t.Errorf("Selected() = %v, want [5 6 7]", m.Selected())
	}
	if m.Anchor() != 5 {
		t.Errorf("Anchor() = %d, want 5", m.Anchor())
	}
}

func TestRangeWithoutAnchorActsAsClick(t *testing.T) {
	m := New()
	m.Range(6)

	if !equalInts(m.Selected(), []int{6}) {
		t.Errorf("Selected() = %v, want [6]", m.Selected())
	}
	if m.Anchor() != 6 {
		t.Errorf("Anchor() = %d, want 6", m.Anchor())
	}
}

func TestClearForgetsEverything(t *testing.T) {
	m := New()
	m.Click(2)
	m.Range(5)
	m.Clear()

	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0", m.Count())
	}
	if m.Anchor() != -1 {
		t.Errorf("Anchor() = %d, want -1", m.Anchor())
	}

	// A range after clear has no anchor and degrades to a click.
	m.Range(3)
	if !equalInts(m.Selected(), []int{3}) {
		t.Errorf("Selected() = %v, want [3]", m.Selected())
	}
}
