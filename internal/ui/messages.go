package ui

import (
	"github.com/Bambou-Dev/UnrealLogsReader/internal/logfile"
)

// FileLoadedMsg carries a freshly parsed store back to the app.
type FileLoadedMsg struct {
	Path  string
	Store *logfile.Store
	Err   error
}

// FileChangedMsg is emitted by the watch loop when the log file changes on
// disk and a reload should run.
type FileChangedMsg struct {
	Path string
}

// WatchClosedMsg signals that the watcher shut down.
type WatchClosedMsg struct{}

// CopiedMsg reports the outcome of a clipboard copy.
type CopiedMsg struct {
	Lines int
	Err   error
}

// StatusMsg updates the status bar text.
type StatusMsg struct {
	Text string
}
