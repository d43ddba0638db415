// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox

import "reflect"

// Erased represents a type-erased value at the erasure boundary.
// The concrete payload type behind an Erased is recovered only through
// [Unpack], never by assertion on the Box fields.
type Erased = any

// Box is a type-erased owning capability handle.
//
// A Box is what remains of an interface value after [Pack] has detached its
// method-table word: the payload lives behind an erased owner (keeping it
// reachable, so the garbage collector releases it exactly when the Box or
// the handle rebuilt from it dies), the method-table word is carried as a
// plain integer, and an identity token of the concrete payload type is kept
// for debug verification.
//
// The zero Box is empty and must not be unpacked. A Box uniquely owns its
// payload; it is a value to move, not to share.
type Box struct {
	// data owns the payload. Holding it here is what preserves the
	// payload's lifetime without knowing its concrete type.
	data Erased

	// vtable is the method-table word of the capability view captured at
	// pack time, stored as a plain machine word.
	vtable uintptr

	// typeID identifies the concrete payload type, for debug verification.
	typeID reflect.Type
}

// New builds a Box from raw parts, storing the three fields verbatim with no
// validation. It exists for [Pack]; callers constructing a Box by hand are
// responsible for the pairing invariant between data and vtable.
func New(data Erased, vtable uintptr, typeID reflect.Type) Box {
	return Box{
		data:   data,
		vtable: vtable,
		typeID: typeID,
	}
}

// Fields surrenders the three parts of the Box: the erased owner, the
// method-table word, and the identity token. It exists for [Unpack]; after
// the parts are taken the Box value is dead and must not be used again.
func (b Box) Fields() (Erased, uintptr, reflect.Type) {
	return b.data, b.vtable, b.typeID
}
