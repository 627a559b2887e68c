// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/storage"
)

var program = derivation.Address(sha3.Sum256([]byte("ledger test program")))

func setup(t *testing.T, faucet bool) *ledger.Ledger {
	fixtures.SetupTestLogger()
	err := storage.Initialise(fixtures.TempDatabase("ledger"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return ledger.New(ledger.DefaultRent(), faucet)
}

func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func owner(n int) derivation.Address {
	return derivation.AddressFromAccount(fixtures.Owner(n).Account())
}

func TestMinimumBalance(t *testing.T) {
	rent := ledger.DefaultRent()
	assert.Equal(t, uint64(890880), rent.MinimumBalance(0), "zero data")
	assert.Equal(t, uint64(953520), rent.MinimumBalance(9), "vault record")
	assert.True(t, rent.IsExempt(890880, 0), "exactly the minimum")
	assert.False(t, rent.IsExempt(890879, 0), "one short")
}

func TestFaucet(t *testing.T) {
	l := setup(t, false)
	defer teardown()

	assert.Equal(t, fault.FaucetDisabled, l.Fund(owner(1), 100), "disabled")
	assert.Equal(t, uint64(0), l.Balance(owner(1)), "no balance")

	_, err := l.Account(owner(1))
	assert.Equal(t, fault.AccountNotFound, err, "absent account")
}

func TestFundAndTransfer(t *testing.T) {
	l := setup(t, true)
	defer teardown()

	alice := owner(1)
	bob := owner(2)

	assert.Equal(t, fault.InvalidAmount, l.Fund(alice, 0), "zero fund")
	assert.Nil(t, l.Fund(alice, 5000), "fund")
	assert.Equal(t, uint64(5000), l.Balance(alice), "funded")

	acc, err := l.Account(alice)
	assert.Nil(t, err, "funded account exists")
	assert.True(t, acc.IsSystem(), "funded account is a system account")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(alice, bob, 100, ledger.SignedBy(bob))
	})
	assert.Equal(t, fault.NotAuthorised, err, "wrong signer")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(alice, bob, 100, nil)
	})
	assert.Equal(t, fault.NotAuthorised, err, "no signer")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(alice, bob, 5001, ledger.SignedBy(alice))
	})
	assert.Equal(t, fault.InsufficientFunds, err, "overdraw")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(alice, bob, 1200, ledger.SignedBy(alice))
	})
	assert.Nil(t, err, "transfer")
	assert.Equal(t, uint64(3800), l.Balance(alice), "debited")
	assert.Equal(t, uint64(1200), l.Balance(bob), "credited, created on first credit")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(bob, alice, 1200, ledger.SignedBy(bob))
	})
	assert.Nil(t, err, "drain")
	_, err = l.Account(bob)
	assert.Equal(t, fault.AccountNotFound, err, "drained account is removed")

	commits, aborts := l.Counts()
	assert.Equal(t, uint64(3), commits, "commits")
	assert.Equal(t, uint64(3), aborts, "aborts")
}

func TestExecuteIsAtomic(t *testing.T) {
	l := setup(t, true)
	defer teardown()

	alice := owner(1)
	bob := owner(2)
	assert.Nil(t, l.Fund(alice, 10000), "fund")

	err := l.Execute(func(tx *ledger.Tx) error {
		if err := tx.Transfer(alice, bob, 4000, ledger.SignedBy(alice)); nil != err {
			return err
		}
		tx.SetNonce(alice, 9)
		assert.Equal(t, uint64(4000), tx.Balance(bob), "visible inside the transaction")
		return fault.InvalidOperation
	})
	assert.Equal(t, fault.InvalidOperation, err, "aborted")

	assert.Equal(t, uint64(10000), l.Balance(alice), "debit rolled back")
	assert.Equal(t, uint64(0), l.Balance(bob), "credit rolled back")
	assert.Equal(t, uint64(0), l.Nonce(alice), "nonce rolled back")

	assert.Panics(t, func() {
		_ = l.Execute(func(tx *ledger.Tx) error {
			_ = tx.Transfer(alice, bob, 4000, ledger.SignedBy(alice))
			panic("boom")
		})
	}, "panic propagates")
	assert.Equal(t, uint64(10000), l.Balance(alice), "panic rolled back")

	err = l.Execute(func(tx *ledger.Tx) error {
		tx.SetNonce(alice, 9)
		return nil
	})
	assert.Nil(t, err, "ledger usable after panic")
	assert.Equal(t, uint64(9), l.Nonce(alice), "nonce stored")
}

func TestProgramAccounts(t *testing.T) {
	l := setup(t, true)
	defer teardown()

	alice := owner(1)
	record, bump, err := derivation.Derive([]byte("state"), alice, program)
	assert.Nil(t, err, "derive")
	authority := derivation.Authorise([]byte("state"), alice, bump, program)

	minimum := l.Rent().MinimumBalance(9)
	assert.Nil(t, l.Fund(alice, minimum+500), "fund")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.CreateAccount(alice, record, 9, program, ledger.SignedBy(alice), ledger.SignedBy(alice))
	})
	assert.Equal(t, fault.NotAuthorised, err, "address not authorised")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.CreateAccount(alice, record, 9, program, ledger.SignedBy(alice), authority)
	})
	assert.Nil(t, err, "create")
	assert.Equal(t, uint64(500), l.Balance(alice), "payer charged the rent minimum")

	acc, err := l.Account(record)
	assert.Nil(t, err, "record exists")
	assert.Equal(t, program, acc.Owner, "program owned")
	assert.Equal(t, 9, len(acc.Data), "allocated")
	assert.Equal(t, minimum, acc.Lamports, "rent exempt")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.CreateAccount(alice, record, 9, program, ledger.SignedBy(alice), authority)
	})
	assert.Equal(t, fault.AccountAlreadyInUse, err, "second create")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.WriteData(record, derivation.System, make([]byte, 9))
	})
	assert.Equal(t, fault.NotAuthorised, err, "write by other program")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.WriteData(record, program, make([]byte, 10))
	})
	assert.Equal(t, fault.InvalidAccountData, err, "resize")

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.WriteData(record, program, data)
	})
	assert.Nil(t, err, "write")
	acc, _ = l.Account(record)
	assert.Equal(t, data, acc.Data, "data stored")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(record, alice, 1, authority)
	})
	assert.Equal(t, fault.NotAuthorised, err, "system transfer cannot debit a program account")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.CloseAccount(record, alice, derivation.System)
	})
	assert.Equal(t, fault.NotAuthorised, err, "close by other program")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.CloseAccount(record, alice, program)
	})
	assert.Nil(t, err, "close")
	assert.Equal(t, minimum+500, l.Balance(alice), "rent refunded")
	_, err = l.Account(record)
	assert.Equal(t, fault.AccountNotFound, err, "record removed")
}

func TestAudit(t *testing.T) {
	l := setup(t, true)
	defer teardown()

	assert.Nil(t, l.Fund(owner(1), 1000000), "fund exempt")
	assert.Nil(t, l.Fund(owner(2), 600000), "fund below rent")

	report, err := l.Audit()
	assert.Nil(t, err, "audit")
	assert.Equal(t, uint64(2), report.Accounts, "accounts")
	assert.Equal(t, uint64(1600000), report.Lamports, "lamports")
	assert.Equal(t, uint64(1), report.BelowRent, "below rent")
	assert.Equal(t, uint64(0), report.Corrupt, "corrupt")
	assert.Equal(t, report, l.LastAudit(), "last audit")

	assert.Equal(t, uint64(1600000), l.Balance(owner(1))+l.Balance(owner(2)), "audit does not modify balances")
}

func TestAccountPacking(t *testing.T) {
	a := &ledger.Account{
		Lamports: 890880,
		Owner:    program,
		Data:     []byte{0xaa, 0xbb},
	}
	packed := a.Pack()
	assert.Equal(t, []byte{0x80, 0xb0, 0x36}, packed[:3], "varint lamports")

	b, err := ledger.UnpackAccount(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, a, b, "unpacked")

	_, err = ledger.UnpackAccount(packed[:20])
	assert.Equal(t, fault.InvalidAccountData, err, "truncated owner")

	_, err = ledger.UnpackAccount([]byte{0x80})
	assert.Equal(t, fault.InvalidAccountData, err, "truncated varint")
}

func TestSignedByRefusesDerivedAddress(t *testing.T) {
	l := setup(t, true)
	defer teardown()

	alice := owner(1)
	vault, bump, err := derivation.Derive([]byte("vault"), alice, program)
	assert.Nil(t, err, "derive")
	assert.Nil(t, l.Fund(vault, 5000), "fund vault")

	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(vault, alice, 5000, ledger.SignedBy(vault))
	})
	assert.Equal(t, fault.NotAuthorised, err, "owner signer for a derived address")
	assert.Equal(t, uint64(5000), l.Balance(vault), "vault untouched")

	authority := derivation.Authorise([]byte("vault"), alice, bump, program)
	err = l.Execute(func(tx *ledger.Tx) error {
		return tx.Transfer(vault, alice, 5000, authority)
	})
	assert.Nil(t, err, "authority transfer")
	assert.Equal(t, uint64(0), l.Balance(vault), "vault drained")
	assert.Equal(t, uint64(5000), l.Balance(alice), "owner credited")
}
