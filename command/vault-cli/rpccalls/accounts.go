// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/rpc/accounts"
)

// GetBalance - lamports held at any address
func (client *Client) GetBalance(address derivation.Address) (*accounts.BalanceReply, error) {
	args := accounts.BalanceArguments{
		Address: &address,
	}

	client.printJson("Balance Request", args)

	var reply accounts.BalanceReply
	if err := client.client.Call("Account.Balance", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return &reply, nil
}

// Fund - faucet credit, testing chains only
func (client *Client) Fund(address derivation.Address, amount uint64) (*accounts.FundReply, error) {
	args := accounts.FundArguments{
		Address: &address,
		Amount:  amount,
	}

	client.printJson("Fund Request", args)

	var reply accounts.FundReply
	if err := client.client.Call("Account.Fund", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Fund Reply", reply)

	return &reply, nil
}
