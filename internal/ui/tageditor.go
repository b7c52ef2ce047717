package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chromatic-tools/datapoint-cli/internal/tags"
	"github.com/chromatic-tools/datapoint-cli/internal/ui/components"
)

// tagOpDoneMsg reports one finished remote tag effect. Failures land on the
// app error line; the optimistic local update is never rolled back.
type tagOpDoneMsg struct {
	datapointID string
	op          tags.TagOp
	err         error
}

// TagEditor is the inline tag row of the datapoint detail view. It wraps a
// tags.Session and turns submit diffs into one fire-and-forget tea.Cmd per
// changed tag.
type TagEditor struct {
	session *tags.Session
	store   tags.TagStore
	pending int
}

// NewTagEditor builds an editor for one datapoint's tags.
func NewTagEditor(store tags.TagStore, datapointID string, names []string) TagEditor {
	return TagEditor{
		session: tags.NewSession(datapointID, names),
		store:   store,
	}
}

// Load points the editor at a different datapoint, dropping any edit state.
func (e *TagEditor) Load(datapointID string, names []string) {
	e.session = tags.NewSession(datapointID, names)
}

// Refresh feeds an upstream tag-list change into the session. An active edit
// is never interrupted.
func (e *TagEditor) Refresh(names []string) {
	if e.session == nil {
		return
	}
	e.session.Reset(names)
}

// Editing reports whether keystrokes should be routed to the editor.
func (e TagEditor) Editing() bool {
	return e.session != nil && e.session.State() == tags.Editing
}

// Busy reports whether any add/remove call is still outstanding.
func (e TagEditor) Busy() bool { return e.pending > 0 }

// Tags returns the canonical tag names for display.
func (e TagEditor) Tags() []string {
	if e.session == nil {
		return nil
	}
	return e.session.Tags()
}

// BeginEdit switches the row into edit mode.
func (e *TagEditor) BeginEdit() {
	if e.session == nil {
		return
	}
	e.session.BeginEdit()
}

// HandleKey mutates the edit buffer or finishes the edit. The returned bool
// is true when the editor has left edit mode; the tea.Cmd carries any
// dispatched tag effects.
func (e *TagEditor) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !e.Editing() {
		return nil, false
	}
	switch {
	case isBack(msg):
		e.session.Discard()
		return nil, true
	case isEnter(msg):
		diff, submitted := e.session.Submit()
		if !submitted || diff.Empty() {
			return nil, true
		}
		return e.dispatch(diff), true
	case isKey(msg, "backspace", "delete"):
		e.session.SetBuffer(dropLastRune(e.session.Buffer()))
	case isKey(msg, "ctrl+u"):
		e.session.SetBuffer("")
	default:
		ch := msg.String()
		if len([]rune(ch)) == 1 {
			e.session.SetBuffer(e.session.Buffer() + ch)
		}
	}
	return nil, false
}

// FinishOp accounts for one completed remote call.
func (e *TagEditor) FinishOp(msg tagOpDoneMsg) {
	if e.pending > 0 {
		e.pending--
	}
}

// dispatch issues one independent command per changed tag. No ordering is
// guaranteed between adds and removes.
func (e *TagEditor) dispatch(d tags.Diff) tea.Cmd {
	ops := d.Ops()
	e.pending += len(ops)
	id := e.session.DatapointID()
	store := e.store
	cmds := make([]tea.Cmd, 0, len(ops))
	for _, op := range ops {
		op := op
		cmds = append(cmds, func() tea.Msg {
			var err error
			if op.Remove {
				err = store.RemoveTagFromDatapoints(op.Tag, []string{id})
			} else {
				err = store.AppendTagByName(op.Tag, []string{id})
			}
			return tagOpDoneMsg{datapointID: id, op: op, err: err}
		})
	}
	return tea.Batch(cmds...)
}

// Render draws the tag row: pills in view mode, a live buffer in edit mode,
// and a sync note while calls are outstanding.
func (e TagEditor) Render(width int, focused bool) string {
	if e.session == nil {
		return ""
	}
	if e.Editing() {
		content := components.SanitizeText(e.session.Buffer()) + AccentStyle.Render("█")
		hint := MutedStyle.Render("comma-separated  |  enter save  |  esc cancel")
		return components.ActiveBox(content+"\n\n"+hint, width)
	}

	line := components.Pills(e.session.Tags())
	if e.Busy() {
		line += "  " + WarningStyle.Render(fmt.Sprintf("⟳ syncing %d…", e.pending))
	}
	if focused {
		return SelectedStyle.Render("> ") + line
	}
	return "  " + line
}

func dropLastRune(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
