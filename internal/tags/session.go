package tags

import "strings"

// State is the edit session mode.
type State int

const (
	// Viewing displays the canonical tag set.
	Viewing State = iota
	// Editing exposes the free-text buffer; canonical and buffer may diverge.
	Editing
	// Submitting exists only inside Submit; callers never observe it across
	// an event boundary.
	Submitting
)

// Session holds the tag state for one datapoint across a view/edit cycle.
// All mutation happens on the single event-processing turn; a Session is
// never shared between goroutines.
type Session struct {
	datapointID string
	canonical   []string
	buffer      string

	state        State
	snapshot     []string // canonical at BeginEdit, the diff's left-hand side
	snapshotText string   // serialized form, used by the no-op guard
}

// NewSession creates a session in Viewing for the given datapoint. Names are
// trimmed; order is preserved for display.
func NewSession(datapointID string, names []string) *Session {
	s := &Session{datapointID: datapointID}
	s.adopt(names)
	return s
}

// DatapointID returns the opaque record reference the session edits.
func (s *Session) DatapointID() string { return s.datapointID }

// State returns the current mode.
func (s *Session) State() State { return s.state }

// Tags returns the canonical tag set.
func (s *Session) Tags() []string {
	return append([]string{}, s.canonical...)
}

// Buffer returns the current edit buffer.
func (s *Session) Buffer() string { return s.buffer }

// Reset re-initializes the session from an upstream tag-list change. In
// Viewing the canonical set and buffer are recomputed. In Editing the
// canonical set is refreshed but the active buffer and snapshot are left
// alone: an upstream refresh never forcibly exits an edit.
func (s *Session) Reset(names []string) {
	trimmed := trimAll(names)
	if s.state == Editing {
		s.canonical = trimmed
		return
	}
	s.adopt(trimmed)
}

// BeginEdit switches Viewing to Editing. The buffer is pre-filled with the
// serialized canonical set, and the snapshot used for diffing at submit time
// is fixed now.
func (s *Session) BeginEdit() {
	if s.state != Viewing {
		return
	}
	s.state = Editing
	s.buffer = FormatTagList(s.canonical)
	s.snapshot = append([]string{}, s.canonical...)
	s.snapshotText = s.buffer
}

// SetBuffer replaces the edit buffer. Ignored outside Editing.
func (s *Session) SetBuffer(text string) {
	if s.state != Editing {
		return
	}
	s.buffer = text
}

// Discard exits Editing without submitting. The buffer is re-serialized
// from the canonical set, which a Reset may have refreshed since edit
// entry; the canonical set is untouched and no effects are issued.
func (s *Session) Discard() {
	if s.state != Editing {
		return
	}
	s.buffer = FormatTagList(s.canonical)
	s.state = Viewing
}

// Submit commits the edit. If the trimmed buffer is textually identical to
// the snapshot, the session returns to Viewing with a zero diff and false.
// Otherwise the buffer is parsed, reconciled against the snapshot, and the
// canonical set is optimistically replaced by the parsed list before any
// remote call completes. Submit is synchronous and never blocks on the
// store; dispatching the returned diff is the caller's job.
func (s *Session) Submit() (Diff, bool) {
	if s.state != Editing {
		return Diff{}, false
	}
	s.state = Submitting
	defer func() { s.state = Viewing }()

	if strings.TrimSpace(s.buffer) == s.snapshotText {
		s.buffer = FormatTagList(s.canonical)
		return Diff{}, false
	}

	edited := ParseTagList(s.buffer)
	diff := Reconcile(s.snapshot, edited)
	s.adopt(edited)
	return diff, true
}

func (s *Session) adopt(names []string) {
	s.canonical = trimAll(names)
	s.buffer = FormatTagList(s.canonical)
	s.snapshot = nil
	s.snapshotText = ""
}

func trimAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.TrimSpace(n))
	}
	return out
}
