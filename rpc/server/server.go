// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/counter"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/rpc/accounts"
	"github.com/bitmark-inc/vaultd/rpc/node"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
	rpcvault "github.com/bitmark-inc/vaultd/rpc/vault"
	"github.com/bitmark-inc/vaultd/vault"
)

// Create - register the Vault, Account and Node services
//
// every service gets its own limiter from the group
func Create(
	log *logger.L,
	version string,
	rpcCount *counter.Counter,
	program *vault.Program,
	l *ledger.Ledger,
	group *ratelimit.Group,
	rateLimit ratelimit.Configuration,
) (*rpc.Server, *node.Node) {

	start := time.Now().UTC()

	n := node.New(log, group.New(rateLimit), start, version, rpcCount, program, l)

	server := rpc.NewServer()

	_ = server.Register(rpcvault.New(log, group.New(rateLimit), program))
	_ = server.Register(accounts.New(log, group.New(rateLimit), l))
	_ = server.Register(n)

	return server, n
}
