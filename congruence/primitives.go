package congruence

import (
	"context"
	"fmt"

	"github.com/mtorpey/libsemigroups/report"
)

// newCoset allocates a fresh coset reached from c via generator a, reusing
// a freed row from the free list when one is available. Grounded on
// original_source/tc.cc's new_coset.
func (t *CosetTable) newCoset(ctx context.Context, c, a int) {
	if ctx.Err() != nil {
		return
	}
	t.active++
	t.defined++
	t.nextReport++

	if t.next == undefined {
		t.next = t.active - 1
		t.forwd[t.last] = t.next
		t.forwd = append(t.forwd, undefined)
		t.bckwd = append(t.bckwd, activeLink(t.last))
		t.table.AddRows(1)
		t.preimInit.AddRows(1)
		t.preimNext.AddRows(1)
	} else {
		t.bckwd[t.next] = activeLink(t.last)
	}

	t.last = t.next
	t.next = t.forwd[t.last]

	for i := 0; i < t.nrGens; i++ {
		t.table.Set(t.last, i, undefined)
		t.preimInit.Set(t.last, i, undefined)
	}

	t.table.Set(c, a, t.last)
	t.preimInit.Set(t.last, a, c)
	t.preimNext.Set(c, a, undefined)
}

// identifyCosets merges the classes of lhs and rhs (and everything their
// merge forces to coincide, via lhsStack/rhsStack), retiring the larger-
// numbered coset of each pair into the free list. Grounded on
// original_source/tc.cc's identify_cosets.
func (t *CosetTable) identifyCosets(ctx context.Context, lhs, rhs int) {
	if ctx.Err() != nil {
		return
	}
	if lhs == rhs {
		return
	}
	if rhs < lhs {
		lhs, rhs = rhs, lhs
	}

	for ctx.Err() == nil {
		lhs = t.resolve(lhs)
		rhs = t.resolve(rhs)

		if lhs != rhs {
			t.active--
			if rhs == t.current {
				t.current = t.bckwd[t.current].val
			}
			if rhs == t.currentNoAdd {
				t.currentNoAdd = t.bckwd[t.currentNoAdd].val
			}

			if rhs == t.last {
				t.last = t.bckwd[t.last].val
			} else {
				nextAfterRhs := t.forwd[rhs]
				prevBeforeRhs := t.bckwd[rhs].val
				t.bckwd[nextAfterRhs] = activeLink(prevBeforeRhs)
				t.forwd[prevBeforeRhs] = nextAfterRhs
				t.forwd[rhs] = t.next
				t.forwd[t.last] = rhs
			}
			t.next = rhs
			t.bckwd[rhs] = deadLink(lhs)

			for i := 0; i < t.nrGens; i++ {
				v := t.preimInit.Get(rhs, i)
				for v != undefined {
					t.table.Set(v, i, lhs)
					u := t.preimNext.Get(v, i)
					t.preimNext.Set(v, i, t.preimInit.Get(lhs, i))
					t.preimInit.Set(lhs, i, v)
					v = u
				}

				v = t.table.Get(rhs, i)
				if v != undefined {
					u := t.preimInit.Get(v, i)
					if u == rhs {
						t.preimInit.Set(v, i, t.preimNext.Get(rhs, i))
					} else {
						for t.preimNext.Get(u, i) != rhs {
							u = t.preimNext.Get(u, i)
						}
						t.preimNext.Set(u, i, t.preimNext.Get(rhs, i))
					}

					u = t.table.Get(lhs, i)
					if u == undefined {
						t.table.Set(lhs, i, v)
						t.preimNext.Set(lhs, i, t.preimInit.Get(v, i))
						t.preimInit.Set(v, i, lhs)
					} else {
						a, b := u, v
						if a > b {
							a, b = b, a
						}
						t.lhsStack = append(t.lhsStack, a)
						t.rhsStack = append(t.rhsStack, b)
					}
				}
			}
		}

		if len(t.lhsStack) == 0 {
			break
		}
		lhs = t.lhsStack[len(t.lhsStack)-1]
		t.lhsStack = t.lhsStack[:len(t.lhsStack)-1]
		rhs = t.rhsStack[len(t.rhsStack)-1]
		t.rhsStack = t.rhsStack[:len(t.rhsStack)-1]
	}
}

// trace follows rel from coset c, extending the table with newCoset along
// the way when add is true, and calls identifyCosets once both sides
// resolve to a (possibly differing) coset under the relation's final
// letter. Grounded on original_source/tc.cc's trace.
func (t *CosetTable) trace(ctx context.Context, c int, rel Relation, add bool) {
	if ctx.Err() != nil {
		return
	}

	lhs := c
	for _, letter := range rel.Lhs[:len(rel.Lhs)-1] {
		if v := t.table.Get(lhs, letter); v != undefined {
			lhs = v
		} else if add {
			t.newCoset(ctx, lhs, letter)
			lhs = t.last
		} else {
			return
		}
	}

	rhs := c
	for _, letter := range rel.Rhs[:len(rel.Rhs)-1] {
		if v := t.table.Get(rhs, letter); v != undefined {
			rhs = v
		} else if add {
			t.newCoset(ctx, rhs, letter)
			rhs = t.last
		} else {
			return
		}
	}

	if ctx.Err() != nil {
		return
	}

	t.nextReport++
	if t.nextReport > 4000000 {
		cur := t.currentNoAdd
		if add {
			cur = t.current
		}
		t.reporter.Emit(report.Info, fmt.Sprintf(
			"%d defined, %d max, %d active, %d killed, current %d",
			t.defined, len(t.forwd), t.active, t.defined-t.active-t.killed, cur))
		if t.defined-t.active-t.killed < 100 {
			t.stopPacking = true
		}
		t.nextReport = 0
		t.killed = t.defined - t.active
	}

	a := rel.Lhs[len(rel.Lhs)-1]
	b := rel.Rhs[len(rel.Rhs)-1]
	u := t.table.Get(lhs, a)
	v := t.table.Get(rhs, b)

	switch {
	case u == undefined && v == undefined:
		if !add {
			return
		}
		t.newCoset(ctx, lhs, a)
		t.table.Set(rhs, b, t.last)
		if a == b {
			t.preimNext.Set(lhs, a, rhs)
			t.preimNext.Set(rhs, a, undefined)
		} else {
			t.preimInit.Set(t.last, b, rhs)
			t.preimNext.Set(rhs, b, undefined)
		}
	case u == undefined:
		t.table.Set(lhs, a, v)
		t.preimNext.Set(lhs, a, t.preimInit.Get(v, a))
		t.preimInit.Set(v, a, lhs)
	case v == undefined:
		t.table.Set(rhs, b, u)
		t.preimNext.Set(rhs, b, t.preimInit.Get(u, b))
		t.preimInit.Set(u, b, rhs)
	default:
		t.identifyCosets(ctx, u, v)
	}
}
