package logfile

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
)

// summaryMarker demarcates the trailing Warning/Error report Unreal appends
// to cook logs. Everything from this line on is dropped.
const summaryMarker = "Warning/Error Summary"

// continuationIndent is prepended to continuation lines for display.
const continuationIndent = "      "

// Store holds every entry of one loaded log file plus aggregates computed
// during the parse. It is immutable once built; a reload replaces it
// wholesale.
type Store struct {
	Entries    []model.Entry
	Categories []string // "All" sentinel first, remainder sorted
	Warnings   int
	Errors     int
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.Entries) }

// Context returns the entries within radius of seq (by sequence index),
// clamped to store bounds. Sequence indices and slice indices coincide.
func (s *Store) Context(seq, radius int) []model.Entry {
	if seq < 0 || seq >= len(s.Entries) {
		return nil
	}
	lo := seq - radius
	if lo < 0 {
		lo = 0
	}
	hi := seq + radius + 1
	if hi > len(s.Entries) {
		hi = len(s.Entries)
	}
	return s.Entries[lo:hi]
}

// Parse consumes a line-oriented log stream and builds the entry store.
//
// A line starting with '[' opens a new logical record (header); any other
// line is a continuation of the preceding header and inherits its level and
// category. Blank lines are skipped without consuming a sequence index, and
// processing stops at the summary marker.
func Parse(r io.Reader) *Store {
	store := &Store{}
	cats := map[string]struct{}{}

	currentLevel := model.LevelDisplay
	currentCategory := model.DefaultCategory
	seq := 0

	// Cook logs can carry arbitrarily long lines (serialized blueprints,
	// asset dumps), so read with no length cap rather than a scanner.
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, readErr := br.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if strings.Contains(line, summaryMarker) {
			break
		}
		if line == "" {
			if readErr != nil {
				break
			}
			continue
		}

		var entry model.Entry
		entry.Seq = seq
		seq++

		if line[0] == '[' {
			entry.IsHeader = true
			entry.Text = line
			entry.Level, entry.Category = Classify(line)
			entry.ContentHash = fingerprint(line)
			currentLevel = entry.Level
			currentCategory = entry.Category
		} else {
			entry.Text = continuationIndent + line
			entry.Level = currentLevel
			entry.Category = currentCategory
		}

		store.Entries = append(store.Entries, entry)
		cats[entry.Category] = struct{}{}
		switch entry.Level {
		case model.LevelWarning:
			store.Warnings++
		case model.LevelError:
			store.Errors++
		}

		if readErr != nil {
			break
		}
	}

	store.Categories = sortedCategories(cats)
	return store
}

// Load reads and parses the log file at path. An unreadable path yields an
// empty store alongside the error, so callers can keep running with nothing
// loaded.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Store{Categories: []string{model.CategoryAll}}, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	return Parse(f), nil
}

// fingerprint hashes a header line from its category offset onward, so the
// volatile timestamp/frame-counter prefix never participates. FNV-1a is a
// known approximation: distinct messages may collide, which at worst merges
// two blocks under duplicate suppression. A zero digest maps to 1, keeping
// zero reserved for continuation entries.
func fingerprint(line string) uint64 {
	text := line
	if start := categoryStart(line); start >= 0 {
		text = line[start:]
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	if sum := h.Sum64(); sum != 0 {
		return sum
	}
	return 1
}

func sortedCategories(set map[string]struct{}) []string {
	cats := make([]string, 0, len(set)+1)
	for c := range set {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return append([]string{model.CategoryAll}, cats...)
}
