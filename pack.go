// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Pack erases a capability view of v into a [Box].
//
// C names the capability (an interface type); v's concrete type must
// satisfy it. Pack records the identity token of the concrete type, captures
// the method-table word that a C-typed handle over v carries, and stores v
// behind the erased owner. The resulting Box does not mention C anywhere in
// its type: Boxes packed under different capabilities are interchangeable as
// values, and whatever carries them stays parametric-free.
//
// Pack consumes v in the ownership sense: the Box is the payload's unique
// owner until [Unpack] transfers it out.
//
// Pack panics when C is not an interface type, when v is nil, or when v's
// concrete type does not satisfy C. A type system with bounded generics
// rejects all three at compile time; Go's cannot express "the concrete type
// behind v satisfies C" through a type parameter, so the rejection moves to
// pack time.
func Pack[C any](v Erased) Box {
	capability := capabilityFor[C]()
	if v == nil {
		panic("vbox: cannot pack a nil payload under capability " + capability.String())
	}
	view, ok := v.(C)
	if !ok {
		panic(fmt.Sprintf("vbox: %v does not satisfy capability %v", reflect.TypeOf(v), capability))
	}

	// The view exists momentarily, for introspection only. It shares v's
	// boxed payload, so nothing is copied; its data word is discarded and
	// only the method-table word is retained.
	vtable := uintptr(wordsOf(unsafe.Pointer(&view)).tab)

	return New(v, vtable, reflect.TypeOf(v))
}
