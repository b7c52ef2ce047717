package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagListTrimsAndDropsEmptyPieces(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseTagList(" a ,  b"))
	assert.Equal(t, []string{"a", "b"}, ParseTagList("a, b,"))
	assert.Equal(t, []string{"a", "b"}, ParseTagList("a,, b"))
	assert.Nil(t, ParseTagList(""))
	assert.Nil(t, ParseTagList("  ,  , "))
}

func TestParseTagListPreservesDuplicatesAndCase(t *testing.T) {
	assert.Equal(t, []string{"a", "a"}, ParseTagList("a, a"))
	assert.Equal(t, []string{"Urgent", "urgent"}, ParseTagList("Urgent, urgent"))
}

func TestFormatTagListRoundTrips(t *testing.T) {
	names := []string{"alpha", "beta", "gamma"}
	assert.Equal(t, names, ParseTagList(FormatTagList(names)))
	assert.Equal(t, "", FormatTagList(nil))
}

func TestReconcileIdempotent(t *testing.T) {
	original := []string{"a", "b"}
	d := Reconcile(original, original)
	assert.Empty(t, d.Added)
	assert.Empty(t, d.Removed)
	assert.Equal(t, []string{"a", "b"}, d.Unchanged)
	assert.True(t, d.Empty())
}

func TestReconcileReorderIsNoop(t *testing.T) {
	d := Reconcile([]string{"a", "b"}, ParseTagList("b, a"))
	assert.Empty(t, d.Added)
	assert.Empty(t, d.Removed)
	assert.True(t, d.Empty())
}

func TestReconcilePureAddition(t *testing.T) {
	d := Reconcile([]string{"a"}, ParseTagList("a, b"))
	assert.Equal(t, []string{"b"}, d.Added)
	assert.Empty(t, d.Removed)
	assert.Equal(t, []string{"a"}, d.Unchanged)
}

func TestReconcilePureRemoval(t *testing.T) {
	d := Reconcile([]string{"a", "b"}, ParseTagList("a"))
	assert.Empty(t, d.Added)
	assert.Equal(t, []string{"b"}, d.Removed)
	assert.Equal(t, []string{"a"}, d.Unchanged)
}

func TestReconcileMixed(t *testing.T) {
	d := Reconcile([]string{"a", "b"}, ParseTagList("b, c"))
	assert.Equal(t, []string{"c"}, d.Added)
	assert.Equal(t, []string{"a"}, d.Removed)
	assert.Equal(t, []string{"b"}, d.Unchanged)
}

func TestReconcileDisjointSetsNeverOverlap(t *testing.T) {
	original := []string{"a", "b", "c"}
	edited := []string{"x", "y"}
	d := Reconcile(original, edited)
	assert.Equal(t, edited, d.Added)
	assert.Equal(t, original, d.Removed)
	assert.Empty(t, d.Unchanged)
	for _, added := range d.Added {
		assert.NotContains(t, d.Removed, added)
	}
}

func TestReconcileMembershipIgnoresSurroundingWhitespace(t *testing.T) {
	d := Reconcile([]string{" a "}, []string{"a"})
	assert.True(t, d.Empty())
}

func TestReconcileEmptyEditedRemovesEverything(t *testing.T) {
	d := Reconcile([]string{"a", "b"}, ParseTagList(""))
	assert.Empty(t, d.Added)
	assert.Equal(t, []string{"a", "b"}, d.Removed)
}

func TestDiffOpsOnePerChangedTag(t *testing.T) {
	d := Diff{Added: []string{"c"}, Removed: []string{"a", "b"}}
	ops := d.Ops()
	assert.Len(t, ops, 3)
	assert.Equal(t, TagOp{Tag: "c"}, ops[0])
	assert.Equal(t, TagOp{Tag: "a", Remove: true}, ops[1])
	assert.Equal(t, `add "c"`, ops[0].String())
	assert.Equal(t, `remove "a"`, ops[1].String())
}
