// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build vboxrelease

package vbox

// verifyEnabled is false under the vboxrelease tag: unpack splices without
// identity checks and never panics.
const verifyEnabled = false
