// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari

import (
	"sync"
	"sync/atomic"
)

// Candidate is one registered type test for an open-sum type O.
// Test reports whether v currently holds the candidate's alternative and,
// if so, extracts it.
type Candidate[O any] struct {
	Tag  string
	Test func(v O) (any, bool)
}

// TestKind classifies the outcome of probing an open-sum value.
type TestKind int

const (
	// TestMatched: a candidate's test succeeded.
	TestMatched TestKind = iota
	// TestUnmatched: the value holds something, but no candidate matched.
	TestUnmatched
	// TestEmpty: the value holds no alternative at all.
	TestEmpty
)

// TestResult is the outcome of [Registry.Test]. For TestMatched, Index is
// the winning candidate's registration position, Tag its name, and Value
// the extracted alternative. For the other kinds Index is [Valueless].
type TestResult struct {
	Kind  TestKind
	Index int
	Tag   string
	Value any
}

// Registry holds the ordered candidate list for one open-sum type O.
// Registration order is priority order: the first candidate whose test
// succeeds wins, and that order is part of the observable contract.
//
// The zero value is an empty registry ready for use. Registration is
// synchronized and intended for init()-time use by independently compiled
// packages; Test reads a copy-on-write snapshot, so it is lock-free and
// reentrant for concurrent readers once registration has quiesced.
type Registry[O any] struct {
	mu   sync.Mutex
	snap atomic.Pointer[[]Candidate[O]]
}

// Register appends a candidate. Tags must be unique within a registry;
// two uncoordinated packages claiming one tag is a wiring error, so a
// duplicate tag panics rather than silently shadowing.
func (r *Registry[O]) Register(tag string, test func(v O) (any, bool)) {
	if test == nil {
		badRegistry("nil candidate test for tag " + tag)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.load()
	for _, c := range old {
		if c.Tag == tag {
			badRegistry("duplicate candidate tag " + tag)
		}
	}
	next := make([]Candidate[O], len(old), len(old)+1)
	copy(next, old)
	next = append(next, Candidate[O]{Tag: tag, Test: test})
	r.snap.Store(&next)
}

// Test probes v against the candidates in registration order and returns
// the first success. Values reporting [Emptiness].Empty (or a nil
// interface value) short-circuit to [TestEmpty] without consulting any
// candidate.
func (r *Registry[O]) Test(v O) TestResult {
	if isEmptyValue(v) {
		return TestResult{Kind: TestEmpty, Index: Valueless}
	}
	for i, c := range r.load() {
		if out, ok := c.Test(v); ok {
			return TestResult{Kind: TestMatched, Index: i, Tag: c.Tag, Value: out}
		}
	}
	return TestResult{Kind: TestUnmatched, Index: Valueless}
}

// Len reports the number of registered candidates.
func (r *Registry[O]) Len() int { return len(r.load()) }

// Tags returns the candidate tags in registration order.
func (r *Registry[O]) Tags() []string {
	snap := r.load()
	tags := make([]string, len(snap))
	for i, c := range snap {
		tags[i] = c.Tag
	}
	return tags
}

func (r *Registry[O]) load() []Candidate[O] {
	if p := r.snap.Load(); p != nil {
		return *p
	}
	return nil
}

// isEmptyValue reports the "holds no alternative" state of an open-sum
// value: a nil interface, or a container that says so itself.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if e, ok := v.(Emptiness); ok {
		return e.Empty()
	}
	return false
}
