// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari

// Valueless is the distinguished alternative index reported by a closed
// sum that currently holds no alternative, typically after an interrupted
// mutation or a consuming Take.
const Valueless = -1

// ClosedSum is the structural protocol for discriminated-union-like types
// with a fixed alternative set. A type opts into dispatch by implementing
// these three methods; the engine never inspects values any other way.
//
// Alternative has the precondition i == AlternativeIndex(). Conforming
// implementations panic on violation; tables built with [TableBuilder.Strict]
// check the precondition in the engine instead and fail the visit with
// [ErrInvalidAlternativeAccess].
type ClosedSum interface {
	// AlternativeCount reports the fixed number of alternatives.
	// Positive and constant for a given type.
	AlternativeCount() int
	// AlternativeIndex reports the active alternative's index in
	// [0, AlternativeCount()), or [Valueless].
	AlternativeIndex() int
	// Alternative returns the alternative at index i.
	// Precondition: i == AlternativeIndex().
	Alternative(i int) any
}

// Consumer is the optional consuming extension of [ClosedSum]. Take moves
// the alternative at index i out of the sum, leaving it valueless.
// Same precondition as Alternative.
type Consumer interface {
	ClosedSum
	TakeAlternative(i int) any
}

// Emptiness is implemented by open-sum containers that can hold nothing.
// [Registry.Test] reports [TestEmpty] for such values instead of probing
// candidates, keeping "holds nothing" distinct from "nothing matched".
type Emptiness interface {
	Empty() bool
}

// SumView is a normalized, non-owning view over one sum-typed argument of
// a visit call. It borrows the underlying value for the duration of one
// dispatch; it is transient and must not be retained across calls.
//
// For closed views the index comes from the protocol. For open views it is
// resolved lazily through the registry, exactly once per view.
type SumView struct {
	count  int
	closed ClosedSum
	open   *openState
}

// openState carries the lazy one-shot resolution of an open view.
type openState struct {
	test     func() TestResult
	raw      any
	resolved bool
	res      TestResult
}

// AsClosed adapts a value satisfying the closed-sum protocol into a view.
func AsClosed(v ClosedSum) SumView {
	return SumView{count: v.AlternativeCount(), closed: v}
}

// AsOpen adapts an open-sum value into a view over r's candidate set.
// The view's alternative count is the number of registered candidates, in
// registration order; the active index is whichever candidate matches
// first at resolution time.
func AsOpen[O any](r *Registry[O], v O) SumView {
	return SumView{
		count: r.Len(),
		open:  &openState{test: func() TestResult { return r.Test(v) }, raw: v},
	}
}

// Count reports the number of reachable alternatives for this argument:
// the fixed count for closed views, the registered candidate count for
// open views.
func (s SumView) Count() int { return s.count }

// Index resolves the active alternative index.
//
// Closed views return [ErrValuelessAccess] when the underlying value is
// valueless. Open views return [ErrNoMatchingAlternative] when no
// candidate matches, or [ErrEmptyOpenSum] when the container holds
// nothing; the open test runs at most once per view, so repeated Index
// calls observe one consistent resolution.
func (s SumView) Index() (int, error) {
	if s.closed != nil {
		i := s.closed.AlternativeIndex()
		if i == Valueless {
			return Valueless, ErrValuelessAccess
		}
		return i, nil
	}
	res := s.open.resolve()
	switch res.Kind {
	case TestMatched:
		return res.Index, nil
	case TestEmpty:
		return Valueless, ErrEmptyOpenSum
	default:
		return Valueless, ErrNoMatchingAlternative
	}
}

// At returns the alternative at index i.
// Precondition: i is the index most recently resolved by Index.
func (s SumView) At(i int) any {
	if s.closed != nil {
		return s.closed.Alternative(i)
	}
	res := s.open.resolve()
	if res.Kind != TestMatched || res.Index != i {
		badAccess("SumView.At")
	}
	return res.Value
}

// Raw returns the borrowed underlying value as it was handed to the view.
// Wildcard clauses receive this for arguments that resolved no index.
func (s SumView) Raw() any {
	if s.closed != nil {
		return s.closed
	}
	return s.open.raw
}

// checkIndex re-reads a closed view's discriminant and reports whether it
// still equals i. Open views resolve once and cannot drift.
func (s SumView) checkIndex(i int) bool {
	if s.closed == nil {
		return true
	}
	return s.closed.AlternativeIndex() == i
}

func (o *openState) resolve() TestResult {
	if !o.resolved {
		o.res = o.test()
		o.resolved = true
	}
	return o.res
}
