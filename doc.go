// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vbox transports an owning capability handle across boundaries
// whose type signatures cannot mention the capability.
//
// A capability is a Go interface type. An interface value is a two-word fat
// handle: a method-table word and a data word. [Pack] splits that handle,
// keeps the payload behind a plain erased owner, records the method-table
// word as a machine integer, and produces a [Box] whose type mentions no
// interface at all. [Unpack] reverses the split: it splices the data word of
// the erased owner with the saved method-table word back into an interface
// value of the original capability. Only the producer and the consumer need
// to agree on the capability; everything between them handles a [Box].
//
// # Design
//
// vbox provides:
//   - A parametric-free carrier: [Box] holds an erased owner, a uintptr
//     method-table word, and a concrete-type identity token
//   - Two operators: [Pack] (erase a capability view) and [Unpack]
//     (reconstruct it)
//   - Nothing else on the hot path: the Box never dispatches, serializes,
//     schedules, or locks
//
// The Box carries; it does not invoke. All dispatch happens through the
// handle returned by [Unpack].
//
// # Pack and Unpack
//
// [Pack] requires the payload's concrete type to satisfy the capability and
// panics otherwise; a language with bounded generics would reject this at
// compile time, Go rejects it at pack time. [Unpack] requires the capability
// it is instantiated with to be the one used at pack time. This agreement is
// a cross-cutting contract between producer and consumer that cannot be
// enforced locally: unpacking under a different capability is undefined at
// invocation time. The default build verifies the half of the contract that
// is observable, the concrete payload identity (see below).
//
// # Layout Assumption
//
// The protocol is defined on the gc runtime's interface representation:
// itab and type-descriptor words point into permanent, non-moving runtime
// memory, so a method-table word survives as a plain uintptr for the life of
// the process. The empty interface works symmetrically; its first word is
// the type descriptor rather than an itab.
//
// # Debug Verification
//
// By default, [Unpack] cross-checks the stored identity token against the
// payload and the capability, and panics with a diagnostic quoting both
// tokens when the packed concrete type cannot satisfy the requested
// capability. This catches the common accident (unpacking under a capability
// the packed type does not implement), not the subtle one (same concrete
// type viewed through a different capability). Building with the vboxrelease
// tag elides every check.
//
// # Thread Transfer
//
// A Box is a passive value and safe to move between goroutines: the erased
// owner moves like any Go value and the method-table word is a plain
// integer. A Box uniquely owns its payload and is not meant to be shared;
// pack on one side, send, unpack on the other.
//
// # Transporting Work
//
// Two payload shapes cover the common cargo:
//
//   - [Deferred]: a suspended computation, forced on the consuming side
//     ([Ready], [Defer], [MapDeferred], [FlatMapDeferred], [Deferred.Force])
//   - [Once]: a one-shot consumer with affine enforcement
//     ([OneShot], [Once.Call], [Once.TryCall], [Once.Discard])
//
// # Example
//
//	// Pack a value viewed as fmt.Stringer; the capability is erased.
//	b := vbox.Pack[fmt.Stringer](clock{hour: 10})
//
//	// The Box type does not mention fmt.Stringer: any queue, field, or
//	// channel can carry it.
//	ch <- b
//
//	// The consumer knows, out of band, which capability is inside.
//	s := vbox.Unpack[fmt.Stringer](<-ch)
//	fmt.Println(s.String())
package vbox
