package editor

// ChangeLog is the session history shown to the user, newest entry first.
// It lives as long as the session that owns it and is never persisted.
type ChangeLog struct {
	entries []string
}

func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Add prepends a single entry.
func (l *ChangeLog) Add(entry string) {
	l.entries = append([]string{entry}, l.entries...)
}

// AddBatch prepends entries, in their given order, under header.
func (l *ChangeLog) AddBatch(header string, entries []string) {
	batch := make([]string, 0, len(entries)+1+len(l.entries))
	batch = append(batch, header)
	batch = append(batch, entries...)
	l.entries = append(batch, l.entries...)
}

// Entries returns a copy of the log, newest first.
func (l *ChangeLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

func (l *ChangeLog) Len() int {
	return len(l.entries)
}

func (l *ChangeLog) Clear() {
	l.entries = nil
}
