// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/vault"
)

func signed(t *testing.T, program derivation.Address, key *account.PrivateKey, op vault.Operation, amount uint64, nonce uint64) *vault.Instruction {
	instruction := &vault.Instruction{
		Operation: op,
		Program:   program,
		Owner:     key.Account(),
		Amount:    amount,
		Nonce:     nonce,
	}
	if err := instruction.Sign(key); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return instruction
}

func TestEndToEnd(t *testing.T) {
	l, p := setup(t)
	defer teardown()

	key := fixtures.Owner(1)
	o := derivation.AddressFromAccount(key.Account())
	assert.Nil(t, l.Fund(o, initialFunds), "fund")

	assert.Nil(t, p.Process(signed(t, p.ID(), key, vault.OpInitialise, 0, 1)), "initialise")
	afterInitialise := l.Balance(o)
	assert.Equal(t, uint64(initialFunds-recordRent), afterInitialise, "record rent paid")

	assert.Nil(t, p.Process(signed(t, p.ID(), key, vault.OpDeposit, 1000000, 2)), "deposit")
	assert.Equal(t, uint64(1000000), vaultBalance(t, l, p, o), "vault after deposit")
	assert.Equal(t, afterInitialise-1000000, l.Balance(o), "owner after deposit")

	assert.Nil(t, p.Process(signed(t, p.ID(), key, vault.OpWithdraw, 400000, 3)), "withdraw")
	assert.Equal(t, uint64(600000), vaultBalance(t, l, p, o), "vault after withdraw")
	assert.Equal(t, afterInitialise-600000, l.Balance(o), "owner up 400000")

	assert.Nil(t, p.Process(signed(t, p.ID(), key, vault.OpClose, 0, 4)), "close")
	assert.Equal(t, uint64(0), vaultBalance(t, l, p, o), "vault after close")
	assert.Equal(t, uint64(initialFunds), l.Balance(o), "owner up remaining 600000 and record rent")

	info, err := p.Info(o)
	assert.Nil(t, err, "info")
	assert.False(t, info.Initialised, "record gone")
	assert.Equal(t, uint64(4), info.Nonce, "last nonce")
}

func TestNonceReplay(t *testing.T) {
	l, p := setup(t)
	defer teardown()

	key := fixtures.Owner(1)
	o := derivation.AddressFromAccount(key.Account())
	assert.Nil(t, l.Fund(o, initialFunds), "fund")

	assert.Nil(t, p.Process(signed(t, p.ID(), key, vault.OpInitialise, 0, 10)), "initialise")

	deposit := signed(t, p.ID(), key, vault.OpDeposit, 1000000, 11)
	assert.Nil(t, p.Process(deposit), "deposit")

	withdraw := signed(t, p.ID(), key, vault.OpWithdraw, 100000, 12)
	assert.Nil(t, p.Process(withdraw), "withdraw")
	assert.Equal(t, fault.NonceReused, p.Process(withdraw), "replayed withdraw")
	assert.Equal(t, fault.NonceReused, p.Process(signed(t, p.ID(), key, vault.OpWithdraw, 100000, 5)), "older nonce")
	assert.Equal(t, uint64(900000), vaultBalance(t, l, p, o), "replay had no effect")

	// a failed instruction does not consume its nonce
	assert.Equal(t, fault.InsufficientAmount, p.Process(signed(t, p.ID(), key, vault.OpWithdraw, 5000000, 13)), "over withdraw")
	assert.Nil(t, p.Process(signed(t, p.ID(), key, vault.OpWithdraw, 100000, 13)), "nonce reusable after failure")
}

func TestInstructionAuthentication(t *testing.T) {
	l, p := setup(t)
	defer teardown()

	key := fixtures.Owner(1)
	other := fixtures.Owner(2)
	o := derivation.AddressFromAccount(key.Account())
	assert.Nil(t, l.Fund(o, initialFunds), "fund")

	forged := signed(t, p.ID(), other, vault.OpInitialise, 0, 1)
	forged.Owner = key.Account()
	assert.Equal(t, fault.InvalidSignature, p.Process(forged), "signed by another key")

	altered := signed(t, p.ID(), key, vault.OpDeposit, 1000000, 1)
	altered.Amount = 2000000
	assert.Equal(t, fault.InvalidSignature, p.Process(altered), "altered amount")

	elsewhere := derivation.Address(sha3.Sum256([]byte("another deployment")))
	assert.Equal(t, fault.WrongProgram, p.Process(signed(t, elsewhere, key, vault.OpInitialise, 0, 1)), "another program")

	moved := signed(t, elsewhere, key, vault.OpInitialise, 0, 1)
	moved.Program = p.ID()
	assert.Equal(t, fault.InvalidSignature, p.Process(moved), "program changed after signing")

	long := signed(t, p.ID(), key, vault.OpInitialise, 0, 1)
	long.Signature = append(long.Signature, 0x00)
	assert.Equal(t, fault.SignatureTooLong, p.Process(long), "long signature")

	live := &account.PrivateKey{
		Test:       false,
		PrivateKey: key.PrivateKey,
	}
	assert.Equal(t, fault.WrongNetworkForPublicKey, p.Process(signed(t, p.ID(), live, vault.OpInitialise, 0, 1)), "live key on testing chain")

	assert.Equal(t, fault.InvalidOwner, (&vault.Instruction{Operation: vault.OpClose}).Verify(true), "no owner")

	bad := &vault.Instruction{Operation: vault.Operation(99), Owner: key.Account()}
	assert.Equal(t, fault.InvalidOperation, bad.Sign(key), "unknown operation")
	assert.Equal(t, fault.InvalidOwner, signedByWrongKey(key, other), "sign with another key")

	info, _ := p.Info(o)
	assert.False(t, info.Initialised, "nothing was processed")
	assert.Equal(t, uint64(0), info.Nonce, "no nonce consumed")
	assert.Equal(t, uint64(initialFunds), l.Balance(o), "balance unchanged")
}

func signedByWrongKey(owner *account.PrivateKey, signer *account.PrivateKey) error {
	instruction := &vault.Instruction{
		Operation: vault.OpInitialise,
		Owner:     owner.Account(),
		Nonce:     1,
	}
	return instruction.Sign(signer)
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "initialise", vault.OpInitialise.String(), "initialise")
	assert.Equal(t, "deposit", vault.OpDeposit.String(), "deposit")
	assert.Equal(t, "withdraw", vault.OpWithdraw.String(), "withdraw")
	assert.Equal(t, "close", vault.OpClose.String(), "close")
	assert.Equal(t, "*unknown*", vault.Operation(0).String(), "unknown")
}
