// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari

// Box is the reference open-sum container: an any-like holder whose held
// type is not fixed by its declared type and can only be probed at
// runtime through a [Registry]. A Box ships with no candidates of its
// own; independent packages register the alternatives they care about.
//
// The zero Box is empty.
type Box struct {
	v    any
	full bool
}

// BoxOf creates a Box holding v. A nil v still counts as holding a value;
// use [EmptyBox] for the holds-nothing state.
func BoxOf(v any) Box {
	return Box{v: v, full: true}
}

// EmptyBox creates a Box in the holds-nothing state.
func EmptyBox() Box {
	return Box{}
}

// Empty implements [Emptiness].
func (b Box) Empty() bool { return !b.full }

// Get returns the held value; nil when empty.
func (b Box) Get() any { return b.v }

// Holds builds a candidate test reporting whether a Box currently holds a
// T, extracting it on success. Probing is a plain type assertion, not
// reflection; only types someone registered participate in dispatch.
func Holds[T any]() func(Box) (any, bool) {
	return func(b Box) (any, bool) {
		t, ok := b.v.(T)
		if !ok {
			return nil, false
		}
		return t, true
	}
}
