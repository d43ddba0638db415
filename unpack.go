// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Unpack consumes a [Box] and reconstructs the owning capability handle that
// [Pack] erased.
//
// C must be the capability used at pack time. The contract cannot be checked
// in general: the token a Box carries identifies the concrete payload type,
// not the capability, so unpacking under a different capability that the
// same concrete type happens to satisfy is not detected and the resulting
// handle is undefined at invocation time. The default build does verify the
// observable half of the contract and panics, quoting both identity tokens,
// when the packed concrete type cannot back a C handle at all. The
// vboxrelease build tag elides the checks.
//
// Unpack transfers ownership of the payload into the returned handle; the
// Box value is dead afterwards and must not be unpacked again.
func Unpack[C any](b Box) C {
	capability := capabilityFor[C]()
	data, vtable, typeID := b.Fields()

	if verifyEnabled {
		verifyPayload(capability, data, typeID)
	}

	// Split the erased owner. Its first word belongs to the universal
	// identity view and is discarded; only the data word survives into the
	// reconstructed handle.
	payload := wordsOf(unsafe.Pointer(&data)).data

	// Splice the saved method-table word with the payload word into a
	// fresh C header. The word is an opaque address into permanent runtime
	// memory; converting it back from uintptr is what the layout
	// assumption licenses.
	var view C
	words := wordsOf(unsafe.Pointer(&view))
	words.tab = unsafe.Pointer(vtable)
	words.data = payload

	if verifyEnabled {
		verifyReconstructed(view, typeID)
	}
	return view
}

// verifyPayload runs before the splice, on still-valid values: the Box must
// carry a payload, the stored token must match it, and the concrete type
// must satisfy the requested capability. Only the concrete identity is
// validated; capability agreement itself stays the caller's contract.
func verifyPayload(capability reflect.Type, data Erased, typeID reflect.Type) {
	if data == nil {
		panic("vbox: unpack of an empty Box under capability " + capability.String())
	}
	if got := reflect.TypeOf(data); got != typeID {
		panic(fmt.Sprintf("vbox: identity mismatch: packed %v, carrying %v", typeID, got))
	}
	if !typeID.Implements(capability) {
		panic(fmt.Sprintf("vbox: packed %v does not satisfy capability %v", typeID, capability))
	}
}

// verifyReconstructed views the freshly spliced handle through the universal
// identity view and compares the concrete type it reports against the stored
// token.
func verifyReconstructed(view Erased, typeID reflect.Type) {
	if got := reflect.TypeOf(view); got != typeID {
		panic(fmt.Sprintf("vbox: reconstructed handle views %v, packed %v", got, typeID))
	}
}
