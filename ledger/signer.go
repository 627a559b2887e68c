// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/vaultd/derivation"
)

// Signer - authorises debits from an address
//
// *derivation.Authority is a Signer for its derived address
type Signer interface {
	Signs(derivation.Address) bool
}

// address whose owner signature was verified by the caller
type signedBy derivation.Address

// SignedBy - signer for an owner whose signature has already been checked
//
// only signs for ed25519 public keys, a derived address needs its
// *derivation.Authority
func SignedBy(address derivation.Address) Signer {
	return signedBy(address)
}

func (s signedBy) Signs(address derivation.Address) bool {
	return derivation.Address(s) == address && derivation.IsOnCurve(address)
}
