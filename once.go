// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox

import (
	"sync/atomic"
)

// Once wraps a consumer with one-shot enforcement.
// The consumer can be called at most once; subsequent attempts panic (Call)
// or return false (TryCall).
//
// Once is the transport shape for single-shot callables: a *Once[A]
// satisfies any capability of the form interface{ Call(A) }, so it can be
// packed into a [Box], moved across a boundary, and fired exactly once on
// the other side. The language cannot make a function value affine; Once
// enforces it at runtime.
type Once[A any] struct {
	used atomic.Uintptr
	f    func(A)
}

// OneShot creates a one-shot consumer from a regular function.
// The returned Once can be called at most once.
func OneShot[A any](f func(A)) *Once[A] {
	return &Once[A]{f: f}
}

// Call invokes the consumer with the given value.
// Panics if the consumer has already been used.
func (o *Once[A]) Call(v A) {
	if o.used.Add(1) != 1 {
		panic("vbox: one-shot consumer called twice")
	}
	o.f(v)
}

// TryCall attempts to invoke the consumer.
// Returns true on success, or false if already used.
func (o *Once[A]) TryCall(v A) bool {
	if o.used.Add(1) != 1 {
		return false
	}
	o.f(v)
	return true
}

// Discard marks the consumer as used without invoking it.
// This is useful for explicitly dropping a consumer that will not be fired.
func (o *Once[A]) Discard() {
	o.used.Store(1)
}
