package pipeline

import "time"

// Stage describes a phase of a per-file run.
type Stage string

const (
	// StageLoad reads the file from disk.
	StageLoad Stage = "load"
	// StageCache looks the file up in the check cache.
	StageCache Stage = "cache"
	// StageParse runs the lexer and parser.
	StageParse Stage = "parse"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusCached  Status = "cached"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Finished reports whether the event closes the file.
func (e Event) Finished() bool {
	return e.Status == StatusDone || e.Status == StatusCached || e.Status == StatusError
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: directory runs emit from several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// Emit sends ev to sink when sink is set.
func Emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
