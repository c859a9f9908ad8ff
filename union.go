// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari

// Union2 is a fixed tagged union of two alternatives. Unlike [Either] it
// supports consuming access: Take moves the active alternative out and
// leaves the union valueless, the state an interrupted mutation would
// also produce. The zero value holds the zero A at index 0.
//
// *Union2 satisfies [Consumer]; mutation goes through the pointer.
type Union2[A, B any] struct {
	idx int
	a   A
	b   B
}

// First2 creates a Union2 holding alternative 0.
func First2[A, B any](a A) Union2[A, B] {
	return Union2[A, B]{idx: 0, a: a}
}

// Second2 creates a Union2 holding alternative 1.
func Second2[A, B any](b B) Union2[A, B] {
	return Union2[A, B]{idx: 1, b: b}
}

// First returns alternative 0 and true, or zero and false.
func (u *Union2[A, B]) First() (A, bool) {
	if u.idx != 0 {
		var zero A
		return zero, false
	}
	return u.a, true
}

// Second returns alternative 1 and true, or zero and false.
func (u *Union2[A, B]) Second() (B, bool) {
	if u.idx != 1 {
		var zero B
		return zero, false
	}
	return u.b, true
}

// SetFirst stores a as the active alternative.
func (u *Union2[A, B]) SetFirst(a A) {
	var zeroB B
	u.idx, u.a, u.b = 0, a, zeroB
}

// SetSecond stores b as the active alternative.
func (u *Union2[A, B]) SetSecond(b B) {
	var zeroA A
	u.idx, u.a, u.b = 1, zeroA, b
}

// Take moves the active alternative out, leaving the union valueless.
func (u *Union2[A, B]) Take() any {
	return u.TakeAlternative(u.idx)
}

// Reset puts the union into the valueless state, discarding any held
// alternative.
func (u *Union2[A, B]) Reset() {
	var zeroA A
	var zeroB B
	u.idx, u.a, u.b = Valueless, zeroA, zeroB
}

// AlternativeCount implements [ClosedSum].
func (u *Union2[A, B]) AlternativeCount() int { return 2 }

// AlternativeIndex implements [ClosedSum].
func (u *Union2[A, B]) AlternativeIndex() int { return u.idx }

// Alternative implements [ClosedSum].
// Precondition: i == AlternativeIndex().
func (u *Union2[A, B]) Alternative(i int) any {
	if i != u.idx || i == Valueless {
		badAccess("Union2.Alternative")
	}
	if i == 0 {
		return u.a
	}
	return u.b
}

// TakeAlternative implements [Consumer]: returns the alternative at i and
// leaves the union valueless.
// Precondition: i == AlternativeIndex().
func (u *Union2[A, B]) TakeAlternative(i int) any {
	v := u.Alternative(i)
	u.Reset()
	return v
}

// Union3 is a fixed tagged union of three alternatives, with the same
// valueless and consuming semantics as [Union2].
type Union3[A, B, C any] struct {
	idx int
	a   A
	b   B
	c   C
}

// First3 creates a Union3 holding alternative 0.
func First3[A, B, C any](a A) Union3[A, B, C] {
	return Union3[A, B, C]{idx: 0, a: a}
}

// Second3 creates a Union3 holding alternative 1.
func Second3[A, B, C any](b B) Union3[A, B, C] {
	return Union3[A, B, C]{idx: 1, b: b}
}

// Third3 creates a Union3 holding alternative 2.
func Third3[A, B, C any](c C) Union3[A, B, C] {
	return Union3[A, B, C]{idx: 2, c: c}
}

// First returns alternative 0 and true, or zero and false.
func (u *Union3[A, B, C]) First() (A, bool) {
	if u.idx != 0 {
		var zero A
		return zero, false
	}
	return u.a, true
}

// Second returns alternative 1 and true, or zero and false.
func (u *Union3[A, B, C]) Second() (B, bool) {
	if u.idx != 1 {
		var zero B
		return zero, false
	}
	return u.b, true
}

// Third returns alternative 2 and true, or zero and false.
func (u *Union3[A, B, C]) Third() (C, bool) {
	if u.idx != 2 {
		var zero C
		return zero, false
	}
	return u.c, true
}

// Take moves the active alternative out, leaving the union valueless.
func (u *Union3[A, B, C]) Take() any {
	return u.TakeAlternative(u.idx)
}

// Reset puts the union into the valueless state.
func (u *Union3[A, B, C]) Reset() {
	var zeroA A
	var zeroB B
	var zeroC C
	u.idx, u.a, u.b, u.c = Valueless, zeroA, zeroB, zeroC
}

// AlternativeCount implements [ClosedSum].
func (u *Union3[A, B, C]) AlternativeCount() int { return 3 }

// AlternativeIndex implements [ClosedSum].
func (u *Union3[A, B, C]) AlternativeIndex() int { return u.idx }

// Alternative implements [ClosedSum].
// Precondition: i == AlternativeIndex().
func (u *Union3[A, B, C]) Alternative(i int) any {
	if i != u.idx || i == Valueless {
		badAccess("Union3.Alternative")
	}
	switch i {
	case 0:
		return u.a
	case 1:
		return u.b
	default:
		return u.c
	}
}

// TakeAlternative implements [Consumer].
// Precondition: i == AlternativeIndex().
func (u *Union3[A, B, C]) TakeAlternative(i int) any {
	v := u.Alternative(i)
	u.Reset()
	return v
}
