// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// vault-cli - command line client for vaultd
//
// the identity file holds the vaultd connection and the owner's
// encrypted recovery seed; every vault instruction is signed locally
// with the next nonce and sent over JSON RPC
package main
