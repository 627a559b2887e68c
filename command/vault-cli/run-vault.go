// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/vault"
)

func runInitialise(c *cli.Context) error {
	return vaultInstruction(c, vault.OpInitialise, 0)
}

func runDeposit(c *cli.Context) error {
	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("invalid amount: %d", amount)
	}
	return vaultInstruction(c, vault.OpDeposit, amount)
}

// zero is permitted and only advances the nonce
func runWithdraw(c *cli.Context) error {
	return vaultInstruction(c, vault.OpWithdraw, c.Uint64("amount"))
}

func runClose(c *cli.Context) error {
	return vaultInstruction(c, vault.OpClose, 0)
}

func vaultInstruction(c *cli.Context, op vault.Operation, amount uint64) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := privateKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "operation: %s\n", op)
		fmt.Fprintf(m.e, "owner: %s\n", key.Account())
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.VaultInstruction(op, key, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner *account.Account
	var err error
	if o := c.String("owner"); "" != o {
		owner, err = account.AccountFromBase58(o)
	} else {
		owner, err = m.identity.Owner()
	}
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.VaultInfo(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
