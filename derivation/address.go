// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"encoding/hex"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/util"
)

// AddressLength - bytes in an address
const AddressLength = 32

// Address - ledger account key, either an owner public key or a derived address
type Address [AddressLength]byte

// System - the address of the system program that owns plain balances
var System Address

// AddressFromAccount - address of an owner account
func AddressFromAccount(acc *account.Account) Address {
	a := Address{}
	copy(a[:], acc.PublicKeyBytes())
	return a
}

// AddressFromBytes - convert a 32 byte slice
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.CannotDecodeAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromBase58 - decode the text form
func AddressFromBase58(s string) (Address, error) {
	return AddressFromBytes(util.FromBase58(s))
}

// Bytes - address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the system address
func (a Address) IsZero() bool {
	return a == System
}

// String - base58 text form
func (a Address) String() string {
	return util.ToBase58(a[:])
}

// GoString - hex form for debugging (for %#v)
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert the base58 JSON form to an address
func (a *Address) UnmarshalText(s []byte) error {
	address, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = address
	return nil
}
