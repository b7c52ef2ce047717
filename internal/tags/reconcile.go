package tags

import "strings"

// Diff is the result of reconciling an edited tag list against the snapshot
// taken when editing began. Added and Removed drive remote effects; Unchanged
// is computed for observability and tests.
type Diff struct {
	Added     []string
	Removed   []string
	Unchanged []string
}

// Empty reports whether the diff requires no remote effects.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// ParseTagList splits a comma-separated buffer into tag names. Surrounding
// whitespace is trimmed per piece and empty pieces (trailing comma, double
// comma) are dropped. Duplicates are preserved; deduplication is the
// caller's responsibility.
func ParseTagList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	pieces := strings.Split(s, ",")
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FormatTagList serializes tag names into the comma-joined edit-buffer form.
func FormatTagList(names []string) string {
	return strings.Join(names, ", ")
}

// Reconcile computes the minimal add/remove split between the original
// snapshot and the edited list. Membership is exact trimmed-text equality;
// input order does not affect which set a tag lands in.
func Reconcile(original, edited []string) Diff {
	var d Diff
	for _, name := range original {
		if contains(edited, name) {
			d.Unchanged = append(d.Unchanged, name)
		} else {
			d.Removed = append(d.Removed, name)
		}
	}
	for _, name := range edited {
		if !contains(original, name) {
			d.Added = append(d.Added, name)
		}
	}
	return d
}

func contains(names []string, target string) bool {
	for _, n := range names {
		if strings.TrimSpace(n) == strings.TrimSpace(target) {
			return true
		}
	}
	return false
}
