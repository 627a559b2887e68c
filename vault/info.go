// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/ledger"
)

// Info - read only view of an owner's vault
type Info struct {
	Program        derivation.Address `json:"program"`
	Owner          derivation.Address `json:"owner"`
	OwnerBalance   uint64             `json:"ownerBalance"`
	Nonce          uint64             `json:"nonce"`
	Record         derivation.Address `json:"record"`
	RecordBump     derivation.Bump    `json:"recordBump"`
	Initialised    bool               `json:"initialised"`
	StoredBump     derivation.Bump    `json:"storedBump"`
	RecordLamports uint64             `json:"recordLamports"`
	Vault          derivation.Address `json:"vault"`
	VaultBump      derivation.Bump    `json:"vaultBump"`
	Balance        uint64             `json:"balance"`
}

// Info - current state of the owner's record and vault
func (p *Program) Info(owner derivation.Address) (*Info, error) {
	record, recordBump, err := p.RecordAddress(owner)
	if nil != err {
		return nil, err
	}
	vault, vaultBump, err := p.VaultAddress(owner)
	if nil != err {
		return nil, err
	}

	info := &Info{
		Program:    p.id,
		Owner:      owner,
		Record:     record,
		RecordBump: recordBump,
		Vault:      vault,
		VaultBump:  vaultBump,
	}

	err = p.ledger.View(func(tx *ledger.Tx) error {
		info.OwnerBalance = tx.Balance(owner)
		info.Nonce = tx.Nonce(owner)
		info.Balance = tx.Balance(vault)

		account, err := tx.Account(record)
		if nil != err {
			return nil
		}
		info.RecordLamports = account.Lamports

		r, err := UnpackRecord(account.Data)
		if nil != err || p.id != account.Owner {
			return nil
		}
		info.Initialised = true
		info.StoredBump = r.Bump
		return nil
	})
	if nil != err {
		return nil, err
	}
	return info, nil
}
