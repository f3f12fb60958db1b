package scan

import "time"

// Entry is one discovered junk item. Size and ModTime are best-effort
// snapshots taken at discovery time and are never refreshed.
type Entry struct {
	// Path is the absolute filesystem path of the matched file or folder.
	Path string

	// Size is the byte size of the file, or the recursive content size for
	// a matched folder.
	Size int64

	// ModTime is the entry's modification time.
	ModTime time.Time
}

// Event is one element of the scan stream. The stream ends with exactly one
// terminal event (DoneEvent or AbortedEvent) followed by channel close.
type Event interface {
	isEvent()
}

// ProgressEvent reports the directory currently being scanned.
type ProgressEvent struct {
	Dir string
}

// MatchEvent reports a discovered junk entry.
type MatchEvent struct {
	Entry Entry
}

// DoneEvent reports successful completion: the sum of all emitted match
// sizes, the match count, and the wall-clock duration of the scan.
type DoneEvent struct {
	TotalBytes int64
	Matches    int
	Elapsed    time.Duration
}

// AbortedEvent reports that the scan observed cancellation and stopped.
// No DoneEvent follows an AbortedEvent.
type AbortedEvent struct{}

func (ProgressEvent) isEvent() {}
func (MatchEvent) isEvent()    {}
func (DoneEvent) isEvent()     {}
func (AbortedEvent) isEvent()  {}
