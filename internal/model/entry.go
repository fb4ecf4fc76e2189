package model

// Level is the severity of a log entry. Display is the default; a line
// carrying both Warning and Error markers classifies as Error.
type Level int

const (
	LevelDisplay Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return "Display"
	}
}

// CategoryAll is the sentinel meaning "no category restriction".
const CategoryAll = "All"

// DefaultCategory is assigned when a line carries no recognizable LogX: tag.
const DefaultCategory = "General"

// Entry is one physical line of an Unreal log.
//
// Header entries open a new logical record (bracketed timestamp prefix) and
// carry a non-zero ContentHash; continuation entries belong to the preceding
// header, inherit its Level and Category, and never hash.
type Entry struct {
	Text        string
	Category    string
	Level       Level
	ContentHash uint64
	IsHeader    bool
	Seq         int // position among non-blank, pre-summary lines
}
