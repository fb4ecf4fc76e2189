package logfile

import (
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveLatest expands a glob pattern (including recursive ** patterns) and
// returns the most recently modified matching file. A plain path without
// glob metacharacters resolves to itself.
//
// Unreal keeps rotated logs side by side in Saved/Logs/, so pointing the
// reader at "Saved/Logs/*.log" opens the current one.
func ResolveLatest(pattern string) (string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return "", fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("expand pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no files match %q", pattern)
	}

	var newest string
	var newestMod time.Time
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = m
			newestMod = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no readable files match %q", pattern)
	}
	return newest, nil
}
