// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox

// Deferred represents a suspended computation producing a value of type A.
// It is the payload shape for shipping pending work through a [Box]: pack a
// value whose capability yields a Deferred, move the Box wherever it needs
// to go, unpack there, and force the result on the consuming side.
//
// A Deferred carries a method set of its own (Force), so it can also be
// packed directly under a capability such as interface{ Force() A }.
type Deferred[A any] func() A

// Ready lifts an already-computed value into a Deferred.
// Forcing it returns the value immediately.
func Ready[A any](a A) Deferred[A] {
	return func() A { return a }
}

// Defer suspends a computation. The function is not called until the
// Deferred is forced, and is called once per Force.
func Defer[A any](f func() A) Deferred[A] {
	return Deferred[A](f)
}

// MapDeferred applies a pure function to the result of a deferred
// computation without forcing it.
func MapDeferred[A, B any](d Deferred[A], f func(A) B) Deferred[B] {
	return func() B {
		return f(d())
	}
}

// FlatMapDeferred sequences two deferred computations: the second is chosen
// from the result of the first. Neither runs until the result is forced.
func FlatMapDeferred[A, B any](d Deferred[A], f func(A) Deferred[B]) Deferred[B] {
	return func() B {
		return f(d())()
	}
}

// Force drives the computation to completion and returns its result.
func (d Deferred[A]) Force() A {
	return d()
}
