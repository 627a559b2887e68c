// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the vault-cli identity file
//
// one JSON file per network holding the connection, the owner
// account and the owner's recovery seed encrypted with a password
// derived key (argon2id, nacl secretbox)
package configuration
