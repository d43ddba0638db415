// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox

import (
	"reflect"
	"unsafe"
)

// handleWords mirrors the in-memory layout of a Go interface value: two
// machine words. For a non-empty interface tab is the itab pointer; for the
// empty interface it is the concrete type descriptor. data is the payload
// pointer in both cases.
//
// Both word-0 targets are allocated from permanent runtime memory and are
// neither collected nor moved, so tab round-trips through uintptr for the
// lifetime of the process.
type handleWords struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}

// wordsOf reinterprets the interface value at p as its two words.
// p must point at a variable of interface kind; anything else violates the
// layout assumption the whole package is defined on.
func wordsOf(p unsafe.Pointer) *handleWords {
	return (*handleWords)(p)
}

// capabilityFor returns the reflect.Type of the capability C, panicking when
// C is not an interface type. Every operator guards with this before
// touching interface words: splitting or splicing a non-interface layout
// would corrupt memory rather than fail.
func capabilityFor[C any]() reflect.Type {
	t := reflect.TypeFor[C]()
	if t.Kind() != reflect.Interface {
		panic("vbox: capability " + t.String() + " is not an interface type")
	}
	return t
}
