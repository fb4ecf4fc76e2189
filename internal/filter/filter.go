// Package filter reduces a parsed log store to the ordered subset of entries
// matching the current criteria.
package filter

import (
	"strings"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
)

// Config holds every user-adjustable filter criterion. The zero value hides
// everything; use Default for the all-visible starting state.
type Config struct {
	ShowErrors   bool
	ShowWarnings bool
	ShowDisplay  bool

	// Category restricts entries to one category; model.CategoryAll disables
	// the restriction.
	Category string

	// Search is a case-insensitive substring match on the full entry text.
	Search string

	// ShowDuplicates, when false, suppresses every block (header plus its
	// continuations) whose fingerprint was already seen.
	ShowDuplicates bool
}

// Default returns the all-visible configuration.
func Default() Config {
	return Config{
		ShowErrors:     true,
		ShowWarnings:   true,
		ShowDisplay:    true,
		Category:       model.CategoryAll,
		ShowDuplicates: true,
	}
}

// levelVisible reports whether the toggle for the given level is on.
func (c Config) levelVisible(l model.Level) bool {
	switch l {
	case model.LevelError:
		return c.ShowErrors
	case model.LevelWarning:
		return c.ShowWarnings
	default:
		return c.ShowDisplay
	}
}

// dedup transitions only at header boundaries: continuation lines carry no
// fingerprint of their own, so a suppression decision made at a header holds
// for the whole block.
type dedupState int

const (
	passThrough dedupState = iota
	skipping
)

// Apply scans entries once in original order and returns the indices of
// those passing every criterion. Deterministic: the same store and config
// always yield the same index sequence.
func Apply(entries []model.Entry, cfg Config) []int {
	search := strings.ToLower(cfg.Search)
	seen := make(map[uint64]struct{})
	state := passThrough

	var indices []int
	for i, e := range entries {
		if e.IsHeader {
			if !cfg.ShowDuplicates {
				if _, dup := seen[e.ContentHash]; dup {
					state = skipping
				} else {
					state = passThrough
					seen[e.ContentHash] = struct{}{}
				}
			} else {
				state = passThrough
				seen[e.ContentHash] = struct{}{}
			}
		}
		if state == skipping {
			continue
		}

		if !cfg.levelVisible(e.Level) {
			continue
		}
		if cfg.Category != model.CategoryAll && cfg.Category != "" && e.Category != cfg.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Text), search) {
			continue
		}

		indices = append(indices, i)
	}
	return indices
}
