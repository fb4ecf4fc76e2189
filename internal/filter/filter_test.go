package filter

import (
	"strings"
	"testing"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/logfile"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
)

func parseLines(lines ...string) []model.Entry {
	return logfile.Parse(strings.NewReader(strings.Join(lines, "\n"))).Entries
}

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

func TestApplyLevelToggles(t *testing.T) {
	entries := parseLines(
		"[T]LogA: Display: hello",
		"  more",
		"[T]LogA: Error: bye",
	)

	cfg := Default()
	cfg.ShowErrors = false
	got := Apply(entries, cfg)
	if !equalInts(got, []int{0, 1}) {
		t.Errorf("Apply() = %v, want [0 1] (error header excluded)", got)
	}

	cfg = Default()
	cfg.ShowDisplay = false
	got = Apply(entries, cfg)
	if !equalInts(got, []int{2}) {
		t.Errorf("Apply() = %v, want [2] (display block excluded)", got)
	}
}

func TestApplyCategory(t *testing.T) {
	entries := parseLines(
		"[T]LogCook: Error: missing texture",
		"[T]LogNet: Warning: lag spike",
		"[T]LogCook: Display: cooked 5 assets",
	)

	cfg := Default()
	cfg.Category = "LogCook"
	got := Apply(entries, cfg)
	if !equalInts(got, []int{0, 2}) {
		t.Errorf("Apply() = %v, want [0 2]", got)
	}

	cfg.Category = model.CategoryAll
	got = Apply(entries, cfg)
	if !equalInts(got, []int{0, 1, 2}) {
		t.Errorf("Apply() with All = %v, want everything", got)
	}
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	entries := parseLines(
		"[T]LogA: Display: Loading MAP one",
		"[T]LogA: Display: something else",
		"[T]LogA: Display: loading map two",
	)

	cfg := Default()
	cfg.Search = "loading Map"
	got := Apply(entries, cfg)
	if !equalInts(got, []int{0, 2}) {
		t.Errorf("Apply() = %v, want [0 2]", got)
	}
}

func TestApplyDuplicateSuppression(t *testing.T) {
	entries := parseLines(
		"[T1]LogCook: Error: missing texture",
		"continuation one",
		"[T2]LogCook: Error: missing texture",
		"continuation two",
		"[T3]LogNet: Warning: unique entry",
	)

	cfg := Default()
	cfg.ShowDuplicates = false
	got := Apply(entries, cfg)
	// Only the first block survives; its duplicate and the duplicate's
	// continuation are suppressed together.
	if !equalInts(got, []int{0, 1, 4}) {
		t.Errorf("Apply() = %v, want [0 1 4]", got)
	}

	cfg.ShowDuplicates = true
	got = Apply(entries, cfg)
	if !equalInts(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Apply() with duplicates shown = %v, want everything", got)
	}
}

func TestApplySkipEndsAtNextUniqueHeader(t *testing.T) {
	entries := parseLines(
		"[T1]LogA: Display: repeated",
		"[T2]LogA: Display: repeated",
		"child of the duplicate",
		"[T3]LogB: Display: fresh",
		"child of fresh",
	)

	cfg := Default()
	cfg.ShowDuplicates = false
	got := Apply(entries, cfg)
	if !equalInts(got, []int{0, 3, 4}) {
		t.Errorf("Apply() = %v, want [0 3 4]", got)
	}
}

func TestApplyLeadingContinuationsNotSkipped(t *testing.T) {
	// Continuations before any header belong to no block and pass through.
	entries := parseLines(
		"orphan line",
		"[T]LogA: Display: first header",
	)

	cfg := Default()
	cfg.ShowDuplicates = false
	got := Apply(entries, cfg)
	if !equalInts(got, []int{0, 1}) {
		t.Errorf("Apply() = %v, want [0 1]", got)
	}
}

func TestApplyIdempotent(t *testing.T) {
	entries := parseLines(
		"[T1]LogCook: Error: missing texture",
		"continuation",
		"[T2]LogCook: Error: missing texture",
		"[T3]LogNet: Warning: lag",
	)

	cfg := Default()
	cfg.ShowDuplicates = false
	cfg.Search = "o"

	first := Apply(entries, cfg)
	second := Apply(entries, cfg)
	if !equalInts(first, second) {
		t.Errorf("Apply() not idempotent: %v then %v", first, second)
	}
}

func TestApplyCombinedCriteria(t *testing.T) {
	entries := parseLines(
		"[T]LogCook: Error: missing texture",
		"[T]LogCook: Warning: slow cook",
		"[T]LogNet: Error: dropped connection",
	)

	cfg := Default()
	cfg.ShowWarnings = false
	cfg.Category = "LogCook"
	cfg.Search = "texture"
	got := Apply(entries, cfg)
	if !equalInts(got, []int{0}) {
		t.Errorf("Apply() = %v, want [0]", got)
	}
}
