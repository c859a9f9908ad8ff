// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari

import (
	"errors"
	"fmt"
)

// Runtime dispatch errors, surfaced at the Visit call boundary.
// Dispatch is memoryless: either exactly one clause runs to completion
// or the whole call fails with one of these and no partial result.
var (
	// ErrValuelessAccess reports a closed-sum argument that currently holds
	// no alternative. Which clause would apply is unknowable, so this is
	// never recovered by the engine.
	ErrValuelessAccess = errors.New("vari: closed sum is valueless")

	// ErrNoMatchingAlternative reports an open-sum argument whose value
	// matched no registered candidate and no wildcard clause exists.
	ErrNoMatchingAlternative = errors.New("vari: no matching alternative")

	// ErrEmptyOpenSum reports an open-sum argument that holds nothing at
	// all. Distinct from "has a value but no candidate matched", but still
	// in the ErrNoMatchingAlternative class for errors.Is.
	ErrEmptyOpenSum = fmt.Errorf("vari: open sum holds no value: %w", ErrNoMatchingAlternative)

	// ErrInvalidAlternativeAccess reports an index-consistency violation
	// detected in strict mode: the alternative index reported by a closed
	// sum changed between resolution and access.
	ErrInvalidAlternativeAccess = errors.New("vari: alternative access out of sync")
)

// Table construction errors. These are definitional: a table that fails
// to build never dispatches, so none of them can surface from Visit.
var (
	// ErrIncompleteTable reports a reachable combination with no clause
	// and no wildcard to cover it.
	ErrIncompleteTable = errors.New("vari: missing clause for reachable combination")

	// ErrClauseOutOfRange reports a clause keyed by indices outside the
	// declared alternative counts.
	ErrClauseOutOfRange = errors.New("vari: clause indices out of range")

	// ErrDuplicateClause reports two clauses registered for the same
	// combination.
	ErrDuplicateClause = errors.New("vari: duplicate clause for combination")

	// ErrTableMismatch reports a Visit call whose arguments do not line up
	// with the table's declared shape (argument count or per-argument
	// alternative counts).
	ErrTableMismatch = errors.New("vari: arguments do not match table shape")
)

// badAccess panics with a descriptive message for alternative access whose
// index precondition was violated outside strict mode.
// Extracted as a noinline function so that accessors remain inlineable.
//
//go:noinline
func badAccess(where string) {
	panic("vari: alternative access out of sync in " + where)
}

// badRegistry panics with a descriptive message for registry wiring errors.
//
//go:noinline
func badRegistry(msg string) {
	panic("vari: " + msg)
}
