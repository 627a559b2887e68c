// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/util"
)

// Account - the stored state at one address
type Account struct {
	Lamports uint64             `json:"lamports"`
	Owner    derivation.Address `json:"owner"`
	Data     []byte             `json:"data"`
}

// IsEmpty - true if the account would not be stored
func (account *Account) IsEmpty() bool {
	return 0 == account.Lamports && 0 == len(account.Data)
}

// IsSystem - true for plain balance accounts
func (account *Account) IsSystem() bool {
	return derivation.System == account.Owner
}

// Pack - lamports(varint) ++ owner ++ data
func (account *Account) Pack() []byte {
	buffer := util.ToVarint64(account.Lamports)
	buffer = append(buffer, account.Owner[:]...)
	return append(buffer, account.Data...)
}

// UnpackAccount - decode a stored account
func UnpackAccount(buffer []byte) (*Account, error) {
	lamports, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidAccountData
	}
	buffer = buffer[n:]

	if len(buffer) < derivation.AddressLength {
		return nil, fault.InvalidAccountData
	}
	owner, err := derivation.AddressFromBytes(buffer[:derivation.AddressLength])
	if nil != err {
		return nil, fault.InvalidAccountData
	}
	buffer = buffer[derivation.AddressLength:]

	data := make([]byte, len(buffer))
	copy(data, buffer)

	return &Account{
		Lamports: lamports,
		Owner:    owner,
		Data:     data,
	}, nil
}
