// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !vboxrelease

package vbox

// verifyEnabled selects the checked configuration. The default build keeps
// the unpack-time identity checks; building with the vboxrelease tag elides
// them together with their branches.
const verifyEnabled = true
