// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox_test

import (
	"testing"

	"code.hybscloud.com/vbox"
)

// BenchmarkPack measures erasing a capability view into a Box.
func BenchmarkPack(b *testing.B) {
	for b.Loop() {
		_ = vbox.Pack[adder](amount(300))
	}
}

// BenchmarkUnpack measures splicing a Box back into a capability handle.
func BenchmarkUnpack(b *testing.B) {
	box := vbox.Pack[adder](amount(300))
	for b.Loop() {
		_ = vbox.Unpack[adder](box)
	}
}

// BenchmarkRoundTripDispatch measures pack, unpack, and one dispatch through
// the reconstructed handle.
func BenchmarkRoundTripDispatch(b *testing.B) {
	for b.Loop() {
		h := vbox.Unpack[adder](vbox.Pack[adder](amount(3)))
		if h.Plus(1) != 4 {
			b.Fatal("bad dispatch")
		}
	}
}

// BenchmarkDirectDispatch is the baseline: the same dispatch through an
// interface value that was never erased.
func BenchmarkDirectDispatch(b *testing.B) {
	var h adder = amount(3)
	for b.Loop() {
		if h.Plus(1) != 4 {
			b.Fatal("bad dispatch")
		}
	}
}
