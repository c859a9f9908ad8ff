// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari

import (
	"errors"
	"fmt"
)

// Clause is one dispatch target. It receives the extracted alternatives of
// all arguments, in argument order, and produces the common result type.
type Clause[R any] func(args []any) R

// Table is an immutable N-ary dispatch table over the cartesian product of
// per-argument alternative counts. Build it once with [NewTable]; Visit is
// read-only and safe for concurrent use.
//
// Combinations are keyed mixed-radix: with counts (k0..kn-1), the
// combination (i0..in-1) maps to Σ i_j · stride_j where the last argument
// varies fastest. Exactly one combination is realized per visit.
type Table[R any] struct {
	counts   []int
	strides  []int
	clauses  []Clause[R]
	wildcard Clause[R]
	strict   bool
}

// TableBuilder accumulates clauses for a [Table]. Definitional errors
// (missing clause, out-of-range or duplicate keys) surface from Build,
// before any dispatch can happen.
type TableBuilder[R any] struct {
	counts   []int
	clauses  map[int]Clause[R]
	wildcard Clause[R]
	strict   bool
	err      error
}

// NewTable starts a table over arguments with the given alternative
// counts, one count per argument in declaration order.
func NewTable[R any](counts ...int) *TableBuilder[R] {
	b := &TableBuilder[R]{counts: counts, clauses: make(map[int]Clause[R])}
	if len(counts) == 0 {
		b.err = fmt.Errorf("%w: table needs at least one argument", ErrTableMismatch)
		return b
	}
	for _, k := range counts {
		if k <= 0 {
			b.err = fmt.Errorf("%w: non-positive alternative count %d", ErrTableMismatch, k)
			return b
		}
	}
	return b
}

// Clause registers fn for the combination identified by indices, one
// index per argument.
func (b *TableBuilder[R]) Clause(indices []int, fn Clause[R]) *TableBuilder[R] {
	if b.err != nil {
		return b
	}
	if len(indices) != len(b.counts) {
		b.err = fmt.Errorf("%w: clause has %d indices, table has %d arguments",
			ErrClauseOutOfRange, len(indices), len(b.counts))
		return b
	}
	key := 0
	for i, idx := range indices {
		if idx < 0 || idx >= b.counts[i] {
			b.err = fmt.Errorf("%w: index %d for argument %d (count %d)",
				ErrClauseOutOfRange, idx, i, b.counts[i])
			return b
		}
		key = key*b.counts[i] + idx
	}
	if _, dup := b.clauses[key]; dup {
		b.err = fmt.Errorf("%w: %v", ErrDuplicateClause, indices)
		return b
	}
	b.clauses[key] = fn
	return b
}

// Otherwise registers a wildcard clause. It covers combinations with no
// explicit clause and open-sum arguments that match no candidate; its
// args slice carries the raw borrowed value for unresolved arguments.
func (b *TableBuilder[R]) Otherwise(fn Clause[R]) *TableBuilder[R] {
	if b.err == nil {
		b.wildcard = fn
	}
	return b
}

// Strict makes the built table re-check each closed argument's
// discriminant against the resolved index before access, failing the
// visit with [ErrInvalidAlternativeAccess] on drift instead of deferring
// to the container's own precondition panic.
func (b *TableBuilder[R]) Strict() *TableBuilder[R] {
	b.strict = true
	return b
}

// Build verifies completeness and freezes the table. Without a wildcard,
// every combination in the cartesian product must have a clause.
func (b *TableBuilder[R]) Build() (*Table[R], error) {
	if b.err != nil {
		return nil, b.err
	}
	total := 1
	for _, k := range b.counts {
		total *= k
	}
	clauses := make([]Clause[R], total)
	for key, fn := range b.clauses {
		clauses[key] = fn
	}
	if b.wildcard == nil {
		for key, fn := range clauses {
			if fn == nil {
				return nil, fmt.Errorf("%w: %v", ErrIncompleteTable, combinationOf(key, b.counts))
			}
		}
	}
	strides := make([]int, len(b.counts))
	stride := 1
	for i := len(b.counts) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= b.counts[i]
	}
	return &Table[R]{
		counts:   b.counts,
		strides:  strides,
		clauses:  clauses,
		wildcard: b.wildcard,
		strict:   b.strict,
	}, nil
}

// Counts returns the table's per-argument alternative counts.
func (t *Table[R]) Counts() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)
	return out
}

// Visit resolves each view's discriminant exactly once, left to right,
// and invokes the single clause for the realized combination.
//
// A valueless closed argument fails with [ErrValuelessAccess]. An open
// argument with no matching candidate falls through to the wildcard
// clause if one exists, otherwise fails with [ErrNoMatchingAlternative]
// (or [ErrEmptyOpenSum] for an empty container).
func (t *Table[R]) Visit(views ...SumView) (R, error) {
	var zero R
	if len(views) != len(t.counts) {
		return zero, fmt.Errorf("%w: got %d arguments, want %d",
			ErrTableMismatch, len(views), len(t.counts))
	}
	indices := make([]int, len(views))
	var unresolved error
	for i, v := range views {
		if v.Count() != t.counts[i] {
			return zero, fmt.Errorf("%w: argument %d has %d alternatives, table declares %d",
				ErrTableMismatch, i, v.Count(), t.counts[i])
		}
		idx, err := v.Index()
		switch {
		case err == nil:
			indices[i] = idx
		case v.closed != nil:
			// Valueless is a precondition violation, never wildcarded.
			return zero, err
		case errors.Is(err, ErrEmptyOpenSum):
			// An empty container is not "unmatched"; the wildcard never
			// covers it.
			return zero, err
		default:
			indices[i] = Valueless
			if unresolved == nil {
				unresolved = err
			}
		}
	}
	if unresolved != nil {
		return t.fallback(views, indices, unresolved)
	}
	key := 0
	args := make([]any, len(views))
	for i, v := range views {
		if t.strict && !v.checkIndex(indices[i]) {
			return zero, fmt.Errorf("%w: argument %d", ErrInvalidAlternativeAccess, i)
		}
		key += indices[i] * t.strides[i]
		args[i] = v.At(indices[i])
	}
	if fn := t.clauses[key]; fn != nil {
		return fn(args), nil
	}
	return t.fallback(views, indices, nil)
}

// fallback routes to the wildcard clause, passing extracted alternatives
// where resolution succeeded and raw values where it did not.
func (t *Table[R]) fallback(views []SumView, indices []int, cause error) (R, error) {
	var zero R
	if t.wildcard == nil {
		if cause == nil {
			cause = ErrNoMatchingAlternative
		}
		return zero, cause
	}
	args := make([]any, len(views))
	for i, v := range views {
		if indices[i] == Valueless {
			args[i] = v.Raw()
			continue
		}
		args[i] = v.At(indices[i])
	}
	return t.wildcard(args), nil
}

// combinationOf decodes a mixed-radix key back into per-argument indices,
// for diagnostics only.
func combinationOf(key int, counts []int) []int {
	indices := make([]int, len(counts))
	for i := len(counts) - 1; i >= 0; i-- {
		indices[i] = key % counts[i]
		key /= counts[i]
	}
	return indices
}
