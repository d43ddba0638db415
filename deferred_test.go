// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vbox_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/vbox"
)

func TestReadyForce(t *testing.T) {
	require.Equal(t, uint64(3), vbox.Ready(uint64(3)).Force())
}

func TestDeferIsLazy(t *testing.T) {
	var ran atomic.Uint64
	d := vbox.Defer(func() uint64 {
		ran.Add(1)
		return 9
	})
	require.Zero(t, ran.Load())

	require.Equal(t, uint64(9), d.Force())
	require.Equal(t, uint64(1), ran.Load())
}

func TestMapDeferred(t *testing.T) {
	d := vbox.MapDeferred(vbox.Ready(uint64(10)), func(x uint64) string {
		return amount(x).String()
	})
	require.Equal(t, "10", d.Force())
}

func TestFlatMapDeferred(t *testing.T) {
	d := vbox.FlatMapDeferred(vbox.Ready(uint64(2)), func(x uint64) vbox.Deferred[uint64] {
		return vbox.Defer(func() uint64 { return x + 1 })
	})
	require.Equal(t, uint64(3), d.Force())
}

// source is a capability whose single operation yields deferred work.
type source interface{ Produce() vbox.Deferred[uint64] }

type sourceFunc func() vbox.Deferred[uint64]

func (f sourceFunc) Produce() vbox.Deferred[uint64] { return f() }

// A callable producing a deferred computation travels through a Box and is
// forced on the consuming side.
func TestDeferredThroughBox(t *testing.T) {
	b := vbox.Pack[source](sourceFunc(func() vbox.Deferred[uint64] {
		return vbox.Defer(func() uint64 { return 3 })
	}))

	p := vbox.Unpack[source](b)
	require.Equal(t, uint64(3), p.Produce().Force())
}

// boxSource yields cargo that is itself erased.
type boxSource interface{ Produce() vbox.Box }

type boxSourceFunc func() vbox.Box

func (f boxSourceFunc) Produce() vbox.Box { return f() }

// forcer is the inner cargo's capability; Deferred[uint64] satisfies it.
type forcer interface{ Force() uint64 }

// Nested erasure: unpack the outer Box, invoke to obtain the inner Box,
// unpack that under its own capability, force.
func TestNestedErasure(t *testing.T) {
	outer := vbox.Pack[boxSource](boxSourceFunc(func() vbox.Box {
		return vbox.Pack[forcer](vbox.Defer(func() uint64 { return 3 }))
	}))

	inner := vbox.Unpack[boxSource](outer).Produce()
	require.Equal(t, uint64(3), vbox.Unpack[forcer](inner).Force())
}
