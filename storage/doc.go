// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Writes go through a single Transaction: puts and deletes are
// collected in a leveldb batch and mirrored in a cache so reads inside
// the transaction see them.  Commit writes the batch, Abort drops
// both so no partial state reaches the database.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte owner public key or derived address
// 4. count        = big endian uint64 (8 bytes)
// 5. *others*     = byte values of various length
//
// Accounts:
//
//   A ++ address               - ledger account
//                                data: lamports(varint) ++ owner program(32 bytes) ++ data
//
// Nonces:
//
//   N ++ address               - last instruction nonce accepted for an owner
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
package storage
