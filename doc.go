// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vari provides generic visitation over sum-typed values in Go.
//
// The engine dispatches uniformly over two kinds of tagged values.
// Closed sums have a fixed alternative set known through a structural
// protocol: discriminant index plus typed access by index. Open sums have
// an unbounded alternative set probed at runtime through an extensible
// registry of type tests.
//
// # Protocols
//
// A type opts into closed dispatch by implementing [ClosedSum]:
//
//   - AlternativeCount: fixed number of alternatives
//   - AlternativeIndex: active index, or [Valueless]
//   - Alternative: typed access, precondition index == AlternativeIndex
//
// [Either], [Union2], and [Union3] are the conforming reference
// containers; any third-party discriminated-union-like type participates
// by implementing the same three methods, without modifying the
// dispatcher.
//
// Open sums participate through a [Registry]: an ordered, process-wide
// candidate list per open-sum type. Independent packages extend dispatch
// by calling [Registry.Register] from their init functions; registration
// order is priority order, and the first candidate whose test succeeds
// wins. [Box] is the reference open-sum container.
//
// # Dispatch
//
//   - [Visit1], [Visit2], [Visit3]: typed entry points for one to three
//     closed-sum arguments, one clause per combination
//   - [VisitOpen]: one open-sum argument with per-tag clauses, an
//     optional wildcard, and an optional empty clause
//   - [NewTable] / [Table.Visit] / [VisitN]: the N-ary general form over
//     any mix of closed and open arguments
//
// A visit resolves each argument's discriminant exactly once, left to
// right, realizes exactly one combination of the cartesian product, and
// runs that combination's clause. The common result type of all clauses
// is carried by the type parameter R.
//
// # Failure Model
//
// Definitional errors (a missing clause for a reachable combination, a
// malformed clause key) surface when the dispatch table is built, before
// any dispatch. Runtime failures are explicit values at the visit
// boundary, never panics:
//
//   - [ErrValuelessAccess]: a closed argument holds no alternative
//   - [ErrNoMatchingAlternative]: an open argument matched no candidate
//     and no wildcard clause exists
//   - [ErrEmptyOpenSum]: the open container holds nothing at all; in the
//     ErrNoMatchingAlternative class but distinguishable with errors.Is
//   - [ErrInvalidAlternativeAccess]: strict-mode discriminant drift
//
// Violating an accessor precondition outside strict mode is a programming
// error and panics, matching the containers' own contracts.
//
// # Concurrency
//
// Dispatch is synchronous and runs to completion on the calling
// goroutine. The only shared mutable state is the registry candidate
// list: registration is synchronized and expected to finish during
// program initialization, while [Registry.Test] reads a copy-on-write
// snapshot and is reentrant for concurrent readers. The engine adds no
// synchronization around the visited values themselves.
package vari
