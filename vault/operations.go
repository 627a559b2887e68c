// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/ledger"
)

// the operations below run inside a ledger transaction and assume the
// owner has already been authenticated; any error aborts the whole
// transaction

// Initialise - create the record account for owner
func (p *Program) Initialise(tx *ledger.Tx, owner derivation.Address) error {
	address, bump, err := p.RecordAddress(owner)
	if nil != err {
		return err
	}

	authority := p.recordAuthority(owner, bump)
	err = tx.CreateAccount(owner, address, RecordSize, p.id, ledger.SignedBy(owner), authority)
	if fault.AccountAlreadyInUse == err {
		return fault.DuplicateInitialisation
	}
	if nil != err {
		return err
	}

	record := &Record{
		Bump: bump,
	}
	err = tx.WriteData(address, p.id, record.Pack())
	if nil != err {
		return err
	}

	p.log.Infof("initialise: owner: %s  record: %s  bump: %d", owner, address, bump)
	return nil
}

// Deposit - move amount from owner into an empty vault
func (p *Program) Deposit(tx *ledger.Tx, owner derivation.Address, amount uint64) error {
	_, _, err := p.liveRecord(tx, owner)
	if nil != err {
		return err
	}

	vault, _, err := p.VaultAddress(owner)
	if nil != err {
		return err
	}

	if 0 != tx.Balance(vault) {
		return fault.VaultAlreadyExists
	}
	if amount <= tx.Rent().MinimumBalance(0) {
		return fault.InvalidAmount
	}

	err = tx.Transfer(owner, vault, amount, ledger.SignedBy(owner))
	if nil != err {
		return err
	}

	p.log.Infof("deposit: owner: %s  vault: %s  amount: %d", owner, vault, amount)
	return nil
}

// Withdraw - move amount from the vault back to owner
func (p *Program) Withdraw(tx *ledger.Tx, owner derivation.Address, amount uint64) error {
	_, _, err := p.liveRecord(tx, owner)
	if nil != err {
		return err
	}

	vault, bump, err := p.VaultAddress(owner)
	if nil != err {
		return err
	}

	if tx.Balance(vault) < amount {
		return fault.InsufficientAmount
	}

	authority := p.vaultAuthority(owner, bump)
	err = tx.Transfer(vault, owner, amount, authority)
	if nil != err {
		return err
	}

	p.log.Infof("withdraw: owner: %s  vault: %s  amount: %d", owner, vault, amount)
	return nil
}

// Close - sweep the vault to owner then destroy the record
func (p *Program) Close(tx *ledger.Tx, owner derivation.Address) error {
	address, _, err := p.liveRecord(tx, owner)
	if nil != err {
		return err
	}

	vault, bump, err := p.VaultAddress(owner)
	if nil != err {
		return err
	}

	balance := tx.Balance(vault)
	if balance > 0 {
		authority := p.vaultAuthority(owner, bump)
		err = tx.Transfer(vault, owner, balance, authority)
		if nil != err {
			return err
		}
	}

	err = tx.CloseAccount(address, owner, p.id)
	if nil != err {
		return err
	}

	p.log.Infof("close: owner: %s  swept: %d  record: %s", owner, balance, address)
	return nil
}

// the record must exist, belong to this program and hold the bump
// that derives its own address
func (p *Program) liveRecord(tx *ledger.Tx, owner derivation.Address) (derivation.Address, *Record, error) {
	address, bump, err := p.RecordAddress(owner)
	if nil != err {
		return derivation.Address{}, nil, err
	}

	account, err := tx.Account(address)
	if fault.AccountNotFound == err {
		return derivation.Address{}, nil, fault.VaultNotInitialised
	}
	if nil != err {
		return derivation.Address{}, nil, err
	}
	if p.id != account.Owner {
		return derivation.Address{}, nil, fault.AuthorisationMismatch
	}

	record, err := UnpackRecord(account.Data)
	if nil != err {
		return derivation.Address{}, nil, err
	}

	if !p.recordAuthority(owner, record.Bump).Signs(address) || bump != record.Bump {
		return derivation.Address{}, nil, fault.AuthorisationMismatch
	}

	return address, record, nil
}
