// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/counter"
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/storage"
)

// Ledger - serialised access to the account pools
type Ledger struct {
	sync.Mutex
	log      *logger.L
	rent     Rent
	faucet   bool
	commits  counter.Counter
	aborts   counter.Counter
	lastScan AuditReport
}

// New - ledger over the already initialised storage pools
func New(rent Rent, faucet bool) *Ledger {
	return &Ledger{
		log:    logger.New("ledger"),
		rent:   rent,
		faucet: faucet,
	}
}

// Rent - the rent schedule in force
func (l *Ledger) Rent() Rent {
	return l.rent
}

// Execute - run f as one atomic transaction
//
// if f returns an error (or panics) every change it made is discarded
func (l *Ledger) Execute(f func(*Tx) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		l.log.Errorf("begin transaction error: %s", err)
		return err
	}

	committed := false
	defer func() {
		if !committed {
			trx.Abort()
			l.aborts.Increment()
		}
	}()

	tx := &Tx{
		trx:  trx,
		rent: l.rent,
	}

	err = f(tx)
	if nil != err {
		l.log.Debugf("abort: %s", err)
		return err
	}

	committed = true
	err = trx.Commit()
	if nil != err {
		l.log.Errorf("commit error: %s", err)
		l.aborts.Increment()
		return err
	}
	l.commits.Increment()
	return nil
}

// View - run f against a transaction that is always discarded
func (l *Ledger) View(f func(*Tx) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	return f(&Tx{
		trx:  trx,
		rent: l.rent,
	})
}

// Account - committed state of an address
func (l *Ledger) Account(address derivation.Address) (*Account, error) {
	l.Lock()
	defer l.Unlock()

	account, err := getAccount(address)
	if nil != err {
		return nil, err
	}
	if account.IsEmpty() {
		return nil, fault.AccountNotFound
	}
	return account, nil
}

// Balance - committed lamports of an address, zero if absent
func (l *Ledger) Balance(address derivation.Address) uint64 {
	l.Lock()
	defer l.Unlock()

	account, err := getAccount(address)
	if nil != err {
		return 0
	}
	return account.Lamports
}

// Nonce - last accepted instruction nonce of an owner
func (l *Ledger) Nonce(owner derivation.Address) uint64 {
	l.Lock()
	defer l.Unlock()

	n, _ := storage.Pool.Nonces.GetN(owner[:])
	return n
}

// Counts - committed and aborted transactions since start
func (l *Ledger) Counts() (uint64, uint64) {
	return l.commits.Uint64(), l.aborts.Uint64()
}

// read an account, absent addresses give an empty system account
func getAccount(address derivation.Address) (*Account, error) {
	buffer := storage.Pool.Accounts.Get(address[:])
	if nil == buffer {
		return &Account{}, nil
	}
	return UnpackAccount(buffer)
}
