// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/storage"
)

// Tx - the view of the ledger inside Execute
type Tx struct {
	trx  storage.Transaction
	rent Rent
}

// Rent - the rent schedule in force
func (tx *Tx) Rent() Rent {
	return tx.rent
}

// Account - current state of an address
func (tx *Tx) Account(address derivation.Address) (*Account, error) {
	account, err := tx.get(address)
	if nil != err {
		return nil, err
	}
	if account.IsEmpty() {
		return nil, fault.AccountNotFound
	}
	return account, nil
}

// Exists - true if the address holds lamports or data
func (tx *Tx) Exists(address derivation.Address) bool {
	account, err := tx.get(address)
	return nil == err && !account.IsEmpty()
}

// Balance - lamports of an address, zero if absent
func (tx *Tx) Balance(address derivation.Address) uint64 {
	account, err := tx.get(address)
	if nil != err {
		return 0
	}
	return account.Lamports
}

// Transfer - move lamports between addresses through the system program
//
// from must be a system account without data and signer must sign for it
func (tx *Tx) Transfer(from derivation.Address, to derivation.Address, amount uint64, signer Signer) error {
	source, err := tx.get(from)
	if nil != err {
		return err
	}

	if !source.IsSystem() {
		return fault.NotAuthorised
	}
	if 0 != len(source.Data) {
		return fault.InvalidOperation
	}
	if nil == signer || !signer.Signs(from) {
		return fault.NotAuthorised
	}
	if source.Lamports < amount {
		return fault.InsufficientFunds
	}
	if from == to || 0 == amount {
		return nil
	}

	destination, err := tx.get(to)
	if nil != err {
		return err
	}
	if destination.Lamports+amount < destination.Lamports {
		return fault.InvalidAmount
	}

	source.Lamports -= amount
	destination.Lamports += amount

	tx.put(from, source)
	tx.put(to, destination)
	return nil
}

// CreateAccount - allocate space bytes at address owned by program
//
// the payer funds the rent exempt minimum, the address must be unused
// and authorised by addressSigner
func (tx *Tx) CreateAccount(payer derivation.Address, address derivation.Address, space int, program derivation.Address, payerSigner Signer, addressSigner Signer) error {
	if space < 0 {
		return fault.InvalidAccountData
	}

	existing, err := tx.get(address)
	if nil != err {
		return err
	}
	if !existing.IsEmpty() {
		return fault.AccountAlreadyInUse
	}
	if nil == addressSigner || !addressSigner.Signs(address) {
		return fault.NotAuthorised
	}

	lamports := tx.rent.MinimumBalance(space)
	err = tx.Transfer(payer, address, lamports, payerSigner)
	if nil != err {
		return err
	}

	account := &Account{
		Lamports: lamports,
		Owner:    program,
		Data:     make([]byte, space),
	}
	tx.put(address, account)
	return nil
}

// WriteData - replace the data of a program owned account
//
// the length must match the allocated space
func (tx *Tx) WriteData(address derivation.Address, program derivation.Address, data []byte) error {
	account, err := tx.Account(address)
	if nil != err {
		return err
	}
	if account.Owner != program {
		return fault.NotAuthorised
	}
	if len(data) != len(account.Data) {
		return fault.InvalidAccountData
	}

	copy(account.Data, data)
	tx.put(address, account)
	return nil
}

// CloseAccount - remove a program owned account crediting its lamports to destination
func (tx *Tx) CloseAccount(address derivation.Address, destination derivation.Address, program derivation.Address) error {
	account, err := tx.Account(address)
	if nil != err {
		return err
	}
	if account.Owner != program {
		return fault.NotAuthorised
	}
	if address == destination {
		return fault.InvalidOperation
	}

	target, err := tx.get(destination)
	if nil != err {
		return err
	}
	if target.Lamports+account.Lamports < target.Lamports {
		return fault.InvalidAmount
	}
	target.Lamports += account.Lamports

	tx.put(destination, target)
	tx.trx.Delete(storage.Pool.Accounts, address[:])
	return nil
}

// Nonce - last accepted instruction nonce of an owner
func (tx *Tx) Nonce(owner derivation.Address) uint64 {
	n, _ := tx.trx.GetN(storage.Pool.Nonces, owner[:])
	return n
}

// SetNonce - record the nonce of an accepted instruction
func (tx *Tx) SetNonce(owner derivation.Address, nonce uint64) {
	tx.trx.PutN(storage.Pool.Nonces, owner[:], nonce)
}

// credit lamports without a source
func (tx *Tx) mint(address derivation.Address, amount uint64) error {
	account, err := tx.get(address)
	if nil != err {
		return err
	}
	if account.Lamports+amount < account.Lamports {
		return fault.InvalidAmount
	}
	account.Lamports += amount
	tx.put(address, account)
	return nil
}

func (tx *Tx) get(address derivation.Address) (*Account, error) {
	buffer := tx.trx.Get(storage.Pool.Accounts, address[:])
	if nil == buffer {
		return &Account{}, nil
	}
	return UnpackAccount(buffer)
}

// store, dropping accounts that became empty
func (tx *Tx) put(address derivation.Address, account *Account) {
	if account.IsEmpty() {
		tx.trx.Delete(storage.Pool.Accounts, address[:])
		return
	}
	tx.trx.Put(storage.Pool.Accounts, address[:], account.Pack())
}
