// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - program derived addresses
//
// A derived address is SHA3-256 over the seeds, the program id and a
// fixed marker string. Only digests that do not decode as a point on
// the ed25519 curve are accepted, so no private key can exist for a
// derived address and only the program can authorise debits from it.
//
// The bump is a single trailing seed byte searched downward from 255
// until the digest falls off the curve.
//
// An Authority is the key-less signing token: it carries the seeds
// and bump that reproduce an address and is accepted by the ledger
// in place of an owner signature.
package derivation
