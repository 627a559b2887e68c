// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	rpcvault "github.com/bitmark-inc/vaultd/rpc/vault"
	"github.com/bitmark-inc/vaultd/vault"
)

// RPC method for each instruction
var vaultMethods = map[vault.Operation]string{
	vault.OpInitialise: "Vault.Initialise",
	vault.OpDeposit:    "Vault.Deposit",
	vault.OpWithdraw:   "Vault.Withdraw",
	vault.OpClose:      "Vault.Close",
}

// VaultInfo - derived addresses and balances of an owner
func (client *Client) VaultInfo(owner *account.Account) (*vault.Info, error) {
	if owner.IsTesting() != client.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}

	args := rpcvault.InfoArguments{
		Owner: owner,
	}

	client.printJson("Info Request", args)

	var reply vault.Info
	if err := client.client.Call("Vault.Info", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}

// VaultInstruction - sign and send one instruction
//
// the instruction names the node's program and its nonce is one more
// than the last nonce the node accepted for the owner
func (client *Client) VaultInstruction(op vault.Operation, key *account.PrivateKey, amount uint64) (*vault.Info, error) {
	method, ok := vaultMethods[op]
	if !ok {
		return nil, fault.InvalidOperation
	}

	owner := key.Account()
	info, err := client.VaultInfo(owner)
	if nil != err {
		return nil, err
	}

	instruction := &vault.Instruction{
		Operation: op,
		Program:   info.Program,
		Owner:     owner,
		Amount:    amount,
		Nonce:     info.Nonce + 1,
	}
	err = instruction.Sign(key)
	if nil != err {
		return nil, err
	}

	args := rpcvault.InstructionArguments{
		Program:   instruction.Program,
		Owner:     owner,
		Amount:    amount,
		Nonce:     instruction.Nonce,
		Signature: instruction.Signature,
	}

	client.printJson(method+" Request", args)

	var reply vault.Info
	if err := client.client.Call(method, &args, &reply); err != nil {
		return nil, err
	}

	client.printJson(method+" Reply", reply)

	return &reply, nil
}
