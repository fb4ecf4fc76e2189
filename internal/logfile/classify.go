package logfile

import (
	"strings"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
)

// Unreal log lines usually look like:
//
//	[2024.01.01-14.22.33:123][456]LogCook: Error: Missing Texture...
//
// Classify extracts the severity and the category tag ("LogCook" above).
// It is total: lines without recognizable markers yield Display/"General".
func Classify(line string) (model.Level, string) {
	level := model.LevelDisplay
	if strings.Contains(line, "Error:") ||
		strings.Contains(line, "Critical:") ||
		strings.Contains(line, "Fatal:") {
		level = model.LevelError
	} else if strings.Contains(line, "Warning:") {
		level = model.LevelWarning
	}

	category := model.DefaultCategory
	if start := strings.Index(line, "Log"); start > 0 {
		// Guard against "Log" inside an unrelated word: the category tag is
		// always preceded by the timestamp bracket, a space, or a colon.
		switch line[start-1] {
		case ']', ' ', ':':
			if end := strings.IndexByte(line[start:], ':'); end >= 0 {
				category = line[start : start+end]
			}
		}
	}

	return level, category
}

// categoryStart returns the offset of the first "Log" occurrence, or -1.
// The fingerprint starts hashing here so that two occurrences of the same
// message hash identically even when their timestamp prefixes differ.
func categoryStart(line string) int {
	return strings.Index(line, "Log")
}
