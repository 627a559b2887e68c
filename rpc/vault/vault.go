// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
	program "github.com/bitmark-inc/vaultd/vault"
)

// Processor - the program operations used by the RPC
type Processor interface {
	Process(*program.Instruction) error
	Info(derivation.Address) (*program.Info, error)
}

// Vault - type for the RPC
type Vault struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Processor Processor
}

// New - create the vault RPC service
func New(log *logger.L, limiter *rate.Limiter, processor Processor) *Vault {
	return &Vault{
		Log:       log,
		Limiter:   limiter,
		Processor: processor,
	}
}

// InstructionArguments - a signed instruction, signature is hex
type InstructionArguments struct {
	Program   derivation.Address `json:"program"`
	Owner     *account.Account   `json:"owner"`
	Amount    uint64             `json:"amount,string"`
	Nonce     uint64             `json:"nonce,string"`
	Signature account.Signature  `json:"signature"`
}

// Initialise - create the owner's record
func (v *Vault) Initialise(arguments *InstructionArguments, reply *program.Info) error {
	return v.process(program.OpInitialise, arguments, reply)
}

// Deposit - fund an empty vault from the owner
func (v *Vault) Deposit(arguments *InstructionArguments, reply *program.Info) error {
	return v.process(program.OpDeposit, arguments, reply)
}

// Withdraw - return part of the vault to the owner
func (v *Vault) Withdraw(arguments *InstructionArguments, reply *program.Info) error {
	return v.process(program.OpWithdraw, arguments, reply)
}

// Close - sweep the vault and remove the record
func (v *Vault) Close(arguments *InstructionArguments, reply *program.Info) error {
	return v.process(program.OpClose, arguments, reply)
}

func (v *Vault) process(op program.Operation, arguments *InstructionArguments, reply *program.Info) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || 0 == len(arguments.Signature) {
		return fault.MissingParameters
	}

	v.Log.Infof("Vault.%s: owner: %s  amount: %d  nonce: %d", op, arguments.Owner, arguments.Amount, arguments.Nonce)

	instruction := &program.Instruction{
		Operation: op,
		Program:   arguments.Program,
		Owner:     arguments.Owner,
		Amount:    arguments.Amount,
		Nonce:     arguments.Nonce,
		Signature: arguments.Signature,
	}

	err := v.Processor.Process(instruction)
	if nil != err {
		v.Log.Warnf("Vault.%s: owner: %s  error: %s", op, arguments.Owner, err)
		return err
	}

	info, err := v.Processor.Info(derivation.AddressFromAccount(arguments.Owner))
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// InfoArguments - owner to query
type InfoArguments struct {
	Owner *account.Account `json:"owner"`
}

// Info - derived addresses, bumps and balances of an owner
func (v *Vault) Info(arguments *InfoArguments, reply *program.Info) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	info, err := v.Processor.Info(derivation.AddressFromAccount(arguments.Owner))
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}
