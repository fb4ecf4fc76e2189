// Package export turns selected log lines into clipboard-ready text.
package export

import (
	"strings"

	"github.com/atotto/clipboard"
)

// maxTimestampWidth bounds how far into a line the closing bracket of a
// timestamp prefix may sit. A ']' beyond this is message content, not a
// timestamp.
const maxTimestampWidth = 40

// CleanLine strips the leading bracketed timestamp from a log line, then any
// leftover "> " continuation markers and spaces. Lines without an early ']'
// come back unchanged.
func CleanLine(line string) string {
	end := strings.IndexByte(line, ']')
	if end < 0 || end >= maxTimestampWidth {
		return line
	}
	text := line[end+1:]
	return strings.TrimLeft(text, " >")
}

// FencedBlock joins the cleaned lines into a single fenced code block.
func FencedBlock(lines []string) string {
	var b strings.Builder
	b.WriteString("```\n")
	for _, line := range lines {
		b.WriteString(CleanLine(line))
		b.WriteByte('\n')
	}
	b.WriteString("```")
	return b.String()
}

// Copy places a fenced block of the given lines on the system clipboard.
func Copy(lines []string) error {
	return clipboard.WriteAll(FencedBlock(lines))
}
