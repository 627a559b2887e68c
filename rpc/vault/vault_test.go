// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/rpc/mocks"
	"github.com/bitmark-inc/vaultd/rpc/vault"
	program "github.com/bitmark-inc/vaultd/vault"
)

func TestVaultDeposit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProcessor(ctl)

	key := fixtures.Owner(1)
	owner := derivation.AddressFromAccount(key.Account())

	arg := vault.InstructionArguments{
		Program:   program.DefaultProgramID,
		Owner:     key.Account(),
		Amount:    1000000,
		Nonce:     7,
		Signature: []byte{1, 2, 3},
	}

	info := &program.Info{
		Owner:   owner,
		Nonce:   7,
		Balance: 1000000,
	}

	p.EXPECT().Process(gomock.Any()).DoAndReturn(func(instruction *program.Instruction) error {
		assert.Equal(t, program.OpDeposit, instruction.Operation, "wrong operation")
		assert.Equal(t, arg.Program, instruction.Program, "wrong program")
		assert.Equal(t, arg.Amount, instruction.Amount, "wrong amount")
		assert.Equal(t, arg.Nonce, instruction.Nonce, "wrong nonce")
		return nil
	}).Times(1)
	p.EXPECT().Info(owner).Return(info, nil).Times(1)

	v := vault.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 100), p)

	var reply program.Info
	err := v.Deposit(&arg, &reply)
	assert.Nil(t, err, "wrong Deposit")
	assert.Equal(t, *info, reply, "wrong reply")
}

func TestVaultProcessError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProcessor(ctl)
	p.EXPECT().Process(gomock.Any()).Return(fault.NonceReused).Times(1)
	p.EXPECT().Info(gomock.Any()).Times(0)

	v := vault.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 100), p)

	arg := vault.InstructionArguments{
		Owner:     fixtures.Owner(2).Account(),
		Amount:    10,
		Nonce:     1,
		Signature: []byte{1},
	}

	var reply program.Info
	err := v.Withdraw(&arg, &reply)
	assert.Equal(t, fault.NonceReused, err, "wrong error")
}

func TestVaultMissingParameters(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProcessor(ctl)
	v := vault.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 100), p)

	var reply program.Info
	err := v.Initialise(&vault.InstructionArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong missing owner")

	err = v.Close(&vault.InstructionArguments{Owner: fixtures.Owner(3).Account()}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong missing signature")

	err = v.Info(&vault.InfoArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong missing info owner")
}

func TestVaultInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key := fixtures.Owner(4)
	owner := derivation.AddressFromAccount(key.Account())

	p := mocks.NewMockProcessor(ctl)
	p.EXPECT().Info(owner).Return(&program.Info{Owner: owner, Initialised: true}, nil).Times(1)

	v := vault.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 100), p)

	var reply program.Info
	err := v.Info(&vault.InfoArguments{Owner: key.Account()}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.True(t, reply.Initialised, "wrong initialised")
	assert.Equal(t, owner, reply.Owner, "wrong owner")
}
