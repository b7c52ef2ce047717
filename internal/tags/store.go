package tags

import "fmt"

// TagStore is the capability the reconciler's output is handed to. Each call
// applies a single tag to (or removes it from) the given datapoints; calls
// are independent, with no ordering or atomicity guarantee between them.
type TagStore interface {
	AppendTagByName(tagName string, datapointIDs []string) error
	RemoveTagFromDatapoints(tagName string, datapointIDs []string) error
}

// TagOp identifies one remote effect produced by a diff.
type TagOp struct {
	Tag    string
	Remove bool
}

// String renders the op for CLI output and error lines.
func (op TagOp) String() string {
	if op.Remove {
		return fmt.Sprintf("remove %q", op.Tag)
	}
	return fmt.Sprintf("add %q", op.Tag)
}

// TagOpError pairs a failed op with its error. Failures never roll back the
// session's optimistic update.
type TagOpError struct {
	Op  TagOp
	Err error
}

func (e TagOpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Ops flattens a diff into its effect requests, one per changed tag.
func (d Diff) Ops() []TagOp {
	ops := make([]TagOp, 0, len(d.Added)+len(d.Removed))
	for _, t := range d.Added {
		ops = append(ops, TagOp{Tag: t})
	}
	for _, t := range d.Removed {
		ops = append(ops, TagOp{Tag: t, Remove: true})
	}
	return ops
}

// Apply issues every op in the diff against the store, one call per tag.
// Individual failures are collected and do not stop the remaining ops.
func Apply(store TagStore, datapointID string, d Diff) []TagOpError {
	var failed []TagOpError
	for _, op := range d.Ops() {
		var err error
		if op.Remove {
			err = store.RemoveTagFromDatapoints(op.Tag, []string{datapointID})
		} else {
			err = store.AppendTagByName(op.Tag, []string{datapointID})
		}
		if err != nil {
			failed = append(failed, TagOpError{Op: op, Err: err})
		}
	}
	return failed
}
