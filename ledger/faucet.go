// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
)

// FaucetEnabled - true if Fund may be used
func (l *Ledger) FaucetEnabled() bool {
	return l.faucet
}

// Fund - credit new lamports to an address on testing chains
func (l *Ledger) Fund(address derivation.Address, amount uint64) error {
	if !l.faucet {
		return fault.FaucetDisabled
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	err := l.Execute(func(tx *Tx) error {
		return tx.mint(address, amount)
	})
	if nil != err {
		return err
	}

	l.log.Infof("faucet: %s  amount: %d", address, amount)
	return nil
}
