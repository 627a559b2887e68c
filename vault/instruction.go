// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/util"
)

// Operation - instruction code
type Operation uint64

// the instruction codes
const (
	OpInitialise Operation = iota + 1
	OpDeposit
	OpWithdraw
	OpClose
	maxOperation
)

// String - operation name
func (op Operation) String() string {
	switch op {
	case OpInitialise:
		return "initialise"
	case OpDeposit:
		return "deposit"
	case OpWithdraw:
		return "withdraw"
	case OpClose:
		return "close"
	default:
		return "*unknown*"
	}
}

// Instruction - an owner signed request to the program
//
// the signature covers the packed fields:
//   operation(varint) ++ program(varint length prefixed) ++
//   owner bytes(varint length prefixed) ++ amount(varint) ++ nonce(varint)
type Instruction struct {
	Operation Operation
	Program   derivation.Address
	Owner     *account.Account
	Amount    uint64
	Nonce     uint64
	Signature account.Signature
}

// Pack - the bytes covered by the signature
func (instruction *Instruction) Pack() ([]byte, error) {
	if instruction.Operation < OpInitialise || instruction.Operation >= maxOperation {
		return nil, fault.InvalidOperation
	}
	if nil == instruction.Owner {
		return nil, fault.InvalidOwner
	}

	buffer := util.ToVarint64(uint64(instruction.Operation))
	buffer = appendBytes(buffer, instruction.Program.Bytes())
	buffer = appendBytes(buffer, instruction.Owner.Bytes())
	buffer = append(buffer, util.ToVarint64(instruction.Amount)...)
	buffer = append(buffer, util.ToVarint64(instruction.Nonce)...)
	return buffer, nil
}

// Sign - sign with the owner's private key
func (instruction *Instruction) Sign(key *account.PrivateKey) error {
	if nil == key || nil == instruction.Owner || key.Account().String() != instruction.Owner.String() {
		return fault.InvalidOwner
	}
	packed, err := instruction.Pack()
	if nil != err {
		return err
	}
	instruction.Signature = key.Sign(packed)
	return nil
}

// Verify - check the owner's network and signature
func (instruction *Instruction) Verify(testing bool) error {
	if nil == instruction.Owner {
		return fault.InvalidOwner
	}
	if instruction.Owner.IsTesting() != testing {
		return fault.WrongNetworkForPublicKey
	}
	if len(instruction.Signature) > ed25519.SignatureSize {
		return fault.SignatureTooLong
	}
	packed, err := instruction.Pack()
	if nil != err {
		return err
	}
	return instruction.Owner.CheckSignature(packed, instruction.Signature)
}

// Process - authenticate an instruction and run it atomically
//
// the instruction must name this program and its nonce must exceed
// the last nonce accepted for the owner
func (p *Program) Process(instruction *Instruction) error {
	if p.id != instruction.Program {
		p.log.Warnf("rejected: %s: program: %s", instruction.Operation, instruction.Program)
		return fault.WrongProgram
	}

	err := instruction.Verify(p.testing)
	if nil != err {
		p.log.Warnf("rejected: %s: %s", instruction.Operation, err)
		return err
	}

	owner := derivation.AddressFromAccount(instruction.Owner)

	err = p.ledger.Execute(func(tx *ledger.Tx) error {
		if instruction.Nonce <= tx.Nonce(owner) {
			return fault.NonceReused
		}

		var err error
		switch instruction.Operation {
		case OpInitialise:
			err = p.Initialise(tx, owner)
		case OpDeposit:
			err = p.Deposit(tx, owner, instruction.Amount)
		case OpWithdraw:
			err = p.Withdraw(tx, owner, instruction.Amount)
		case OpClose:
			err = p.Close(tx, owner)
		default:
			err = fault.InvalidOperation
		}
		if nil != err {
			return err
		}

		tx.SetNonce(owner, instruction.Nonce)
		return nil
	})
	if nil != err {
		p.log.Debugf("%s: owner: %s  error: %s", instruction.Operation, owner, err)
	}
	return err
}

// append a varint length prefixed byte slice
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}
