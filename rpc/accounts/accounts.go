// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
)

// Balances - the ledger operations used by the RPC
type Balances interface {
	Account(derivation.Address) (*ledger.Account, error)
	Balance(derivation.Address) uint64
	FaucetEnabled() bool
	Fund(derivation.Address, uint64) error
}

// Account - type for the RPC
type Account struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Balances Balances
}

// New - create the account RPC service
func New(log *logger.L, limiter *rate.Limiter, balances Balances) *Account {
	return &Account{
		Log:      log,
		Limiter:  limiter,
		Balances: balances,
	}
}

// BalanceArguments - any address, owner or derived
type BalanceArguments struct {
	Address *derivation.Address `json:"address"`
}

// BalanceReply - result of balance query
type BalanceReply struct {
	Address  derivation.Address `json:"address"`
	Lamports uint64             `json:"lamports,string"`
	Owner    derivation.Address `json:"owner"`
	DataSize int                `json:"dataSize"`
	Exists   bool               `json:"exists"`
}

// Balance - lamports and owner program of an address
func (a *Account) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Address {
		return fault.MissingParameters
	}

	reply.Address = *arguments.Address

	acc, err := a.Balances.Account(*arguments.Address)
	if fault.AccountNotFound == err {
		return nil
	}
	if nil != err {
		return err
	}

	reply.Lamports = acc.Lamports
	reply.Owner = acc.Owner
	reply.DataSize = len(acc.Data)
	reply.Exists = true
	return nil
}

// FundArguments - faucet request
type FundArguments struct {
	Address *derivation.Address `json:"address"`
	Amount  uint64              `json:"amount,string"`
}

// FundReply - balance after funding
type FundReply struct {
	Address  derivation.Address `json:"address"`
	Lamports uint64             `json:"lamports,string"`
}

// Fund - credit lamports on testing chains
func (a *Account) Fund(arguments *FundArguments, reply *FundReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Address {
		return fault.MissingParameters
	}

	if !a.Balances.FaucetEnabled() {
		return fault.FaucetDisabled
	}

	a.Log.Infof("Account.Fund: %s  amount: %d", arguments.Address, arguments.Amount)

	err := a.Balances.Fund(*arguments.Address, arguments.Amount)
	if nil != err {
		return err
	}

	reply.Address = *arguments.Address
	reply.Lamports = a.Balances.Balance(*arguments.Address)
	return nil
}
