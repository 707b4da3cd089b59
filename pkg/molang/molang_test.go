package molang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestLeafSerializesToQuery(t *testing.T) {
	assert.Equal(t, "q", New("q").Serialize())
	assert.Equal(t, ConcatNone, New("q").Concat())
}

func TestAndSerialization(t *testing.T) {
	assert.Equal(t, "(a) && ((b))", New("a").And(New("b")).Serialize())
}

// Or renders with "||". The reference renderer used "&&" for both
// combinators; this pins the corrected operator.
func TestOrSerialization(t *testing.T) {
	assert.Equal(t, "(a) || ((b))", New("a").Or(New("b")).Serialize())
}

func TestRepeatedCombinationGrowsRootChildren(t *testing.T) {
	e := New("a").And(New("b")).And(New("c"))

	assert.Equal(t, "(a) && ((b) (c))", e.Serialize())
	assert.Len(t, e.Children(), 2)
	assert.Equal(t, "a", e.Query())
}

func TestModeReflectsMostRecentCombinator(t *testing.T) {
	e := New("a").And(New("b")).Or(New("c"))

	assert.Equal(t, ConcatOr, e.Concat())
	assert.Equal(t, "(a) || ((b) (c))", e.Serialize())
}

func TestNestedExpressions(t *testing.T) {
	inner := New("b").Or(New("c"))
	e := New("a").And(inner)

	assert.Equal(t, "(a) && (((b) || ((c))))", e.Serialize())
}

func TestCombinationDoesNotMutateReceiver(t *testing.T) {
	base := New("a").And(New("b"))
	left := base.And(New("c"))
	right := base.Or(New("d"))

	assert.Equal(t, "(a) && ((b))", base.Serialize())
	assert.Equal(t, "(a) && ((b) (c))", left.Serialize())
	assert.Equal(t, "(a) || ((b) (d))", right.Serialize())
}

func TestChildrenReturnsCopy(t *testing.T) {
	e := New("a").And(New("b"))
	children := e.Children()
	children[0] = New("z")

	assert.Equal(t, "(a) && ((b))", e.Serialize())
}

func TestCombinedQueriesAllRendered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		queries := rapid.SliceOfN(rapid.StringMatching(`q\.[a-z_]{1,8}`), 1, 8).Draw(t, "queries")
		useOr := rapid.SliceOfN(rapid.Bool(), len(queries), len(queries)).Draw(t, "ops")

		e := New("root")
		for i, q := range queries {
			if useOr[i] {
				e = e.Or(New(q))
			} else {
				e = e.And(New(q))
			}
		}

		out := e.Serialize()
		for _, q := range queries {
			if !strings.Contains(out, "("+q+")") {
				t.Fatalf("%q missing from %q", q, out)
			}
		}
		if len(e.Children()) != len(queries) {
			t.Fatalf("children = %d, want %d", len(e.Children()), len(queries))
		}
	})
}
