// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - per owner custodial balances
//
// Each owner has two derived addresses under the program id:
//
//   state tag ++ owner ++ bump  - record account, owned by the program
//                                 data: discriminator(8) ++ bump(1)
//   vault tag ++ owner ++ bump  - vault account, a plain system balance
//
// The record marks the vault as initialised and stores its own bump.
// The vault has no private key: debits are authorised by presenting
// the vault tag, owner and bump to the ledger as a derivation.Authority.
//
// Life cycle per owner:
//
//   uninitialised --Initialise--> initialised --Close--> closed
//
// Deposit and Withdraw are only legal while initialised.  Closed is
// the same as uninitialised: a new Initialise creates a new record at
// the same address, and the vault address never changes.
//
// The vault bump is derived afresh on every call and is not compared
// with the bump stored in the record.
package vault
