// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari

import "fmt"

// Handler1 supplies one clause per alternative of a single closed-sum
// argument, indexed by discriminant. Its length must equal the argument's
// alternative count; the common result type R unifies all clauses.
type Handler1[R any] []func(v any) R

// Handler2 supplies one clause per combination of two closed-sum
// arguments: h[i][j] handles (first=i, second=j).
type Handler2[R any] [][]func(a, b any) R

// Handler3 supplies one clause per combination of three closed-sum
// arguments: h[i][j][k] handles (first=i, second=j, third=k).
type Handler3[R any] [][][]func(a, b, c any) R

// Visit1 dispatches one closed-sum argument to the clause matching its
// active alternative. Exactly one clause runs, or the call fails and no
// clause runs.
func Visit1[R any](h Handler1[R], a ClosedSum) (R, error) {
	var zero R
	if len(h) != a.AlternativeCount() {
		return zero, fmt.Errorf("%w: %d clauses for %d alternatives",
			ErrIncompleteTable, len(h), a.AlternativeCount())
	}
	i := a.AlternativeIndex()
	if i == Valueless {
		return zero, ErrValuelessAccess
	}
	return h[i](a.Alternative(i)), nil
}

// Visit2 dispatches two closed-sum arguments over their K1×K2 cartesian
// product. Discriminants are read left to right, once each.
func Visit2[R any](h Handler2[R], a, b ClosedSum) (R, error) {
	var zero R
	if err := checkShape2(len(h), a, b, func(i int) int { return len(h[i]) }); err != nil {
		return zero, err
	}
	i := a.AlternativeIndex()
	j := b.AlternativeIndex()
	if i == Valueless || j == Valueless {
		return zero, ErrValuelessAccess
	}
	return h[i][j](a.Alternative(i), b.Alternative(j)), nil
}

// Visit3 dispatches three closed-sum arguments over their K1×K2×K3
// cartesian product.
func Visit3[R any](h Handler3[R], a, b, c ClosedSum) (R, error) {
	var zero R
	if len(h) != a.AlternativeCount() {
		return zero, fmt.Errorf("%w: %d clause rows for %d alternatives",
			ErrIncompleteTable, len(h), a.AlternativeCount())
	}
	for i := range h {
		if err := checkShape2(len(h[i]), b, c, func(j int) int { return len(h[i][j]) }); err != nil {
			return zero, err
		}
	}
	i := a.AlternativeIndex()
	j := b.AlternativeIndex()
	k := c.AlternativeIndex()
	if i == Valueless || j == Valueless || k == Valueless {
		return zero, ErrValuelessAccess
	}
	return h[i][j][k](a.Alternative(i), b.Alternative(j), c.Alternative(k)), nil
}

// checkShape2 validates a 2-D clause grid against two arguments' counts.
func checkShape2(rows int, a, b ClosedSum, colsOf func(i int) int) error {
	if rows != a.AlternativeCount() {
		return fmt.Errorf("%w: %d clause rows for %d alternatives",
			ErrIncompleteTable, rows, a.AlternativeCount())
	}
	for i := 0; i < rows; i++ {
		if colsOf(i) != b.AlternativeCount() {
			return fmt.Errorf("%w: row %d has %d clauses for %d alternatives",
				ErrIncompleteTable, i, colsOf(i), b.AlternativeCount())
		}
	}
	return nil
}

// Visit1Take dispatches like [Visit1] but moves the alternative out of a
// through [Consumer], so the clause receives the moved value and a is
// left valueless. On failure a is untouched.
func Visit1Take[R any](h Handler1[R], a Consumer) (R, error) {
	var zero R
	if len(h) != a.AlternativeCount() {
		return zero, fmt.Errorf("%w: %d clauses for %d alternatives",
			ErrIncompleteTable, len(h), a.AlternativeCount())
	}
	i := a.AlternativeIndex()
	if i == Valueless {
		return zero, ErrValuelessAccess
	}
	return h[i](a.TakeAlternative(i)), nil
}

// OpenHandler supplies per-candidate clauses for one open-sum argument,
// keyed by candidate tag. Default, if set, is the wildcard for values no
// candidate matched and receives the raw value. OnEmpty, if set, handles
// the container-holds-nothing state; emptiness is never routed to
// Default.
type OpenHandler[O, R any] struct {
	Clauses map[string]func(v any) R
	Default func(v O) R
	OnEmpty func() R
}

// VisitOpen dispatches one open-sum argument through r's candidate list.
// Every registered candidate must have a clause unless Default is set;
// that completeness check fails the call before the value is tested.
func VisitOpen[O, R any](h OpenHandler[O, R], r *Registry[O], v O) (R, error) {
	var zero R
	if h.Default == nil {
		for _, tag := range r.Tags() {
			if _, ok := h.Clauses[tag]; !ok {
				return zero, fmt.Errorf("%w: no clause for candidate %q",
					ErrIncompleteTable, tag)
			}
		}
	}
	res := r.Test(v)
	switch res.Kind {
	case TestMatched:
		if fn, ok := h.Clauses[res.Tag]; ok {
			return fn(res.Value), nil
		}
		return h.Default(v), nil
	case TestEmpty:
		if h.OnEmpty != nil {
			return h.OnEmpty(), nil
		}
		return zero, ErrEmptyOpenSum
	default:
		if h.Default != nil {
			return h.Default(v), nil
		}
		return zero, ErrNoMatchingAlternative
	}
}

// VisitN dispatches any mix of closed and open arguments through a
// prebuilt table. It is the N-ary general form of the engine; the typed
// Visit1..Visit3 entry points cover the common closed-only arities
// without table construction.
func VisitN[R any](t *Table[R], views ...SumView) (R, error) {
	return t.Visit(views...)
}
