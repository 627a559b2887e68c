// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/counter"
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/mode"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
	"github.com/bitmark-inc/vaultd/vault"
)

// Program - program details reported by the node
type Program interface {
	ID() derivation.Address
	Tags() vault.Tags
	RentFloor() uint64
}

// Ledger - ledger statistics reported by the node
type Ledger interface {
	Counts() (uint64, uint64)
	FaucetEnabled() bool
	LastAudit() ledger.AuditReport
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Program Program
	Ledger  Ledger
	counter *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, limiter *rate.Limiter, start time.Time, version string, count *counter.Counter, p Program, l Ledger) *Node {
	return &Node{
		Log:     log,
		Limiter: limiter,
		Start:   start,
		Version: version,
		Program: p,
		Ledger:  l,
		counter: count,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain        string             `json:"chain"`
	Mode         string             `json:"mode"`
	ProgramID    derivation.Address `json:"programId"`
	StateTag     string             `json:"stateTag"`
	VaultTag     string             `json:"vaultTag"`
	RentFloor    uint64             `json:"rentFloor,string"`
	Faucet       bool               `json:"faucet"`
	RPCs         uint64             `json:"rpcs"`
	Transactions Counters           `json:"transactions"`
	Audit        ledger.AuditReport `json:"audit"`
	Version      string             `json:"version"`
	Uptime       string             `json:"uptime"`
}

// Counters - ledger transaction counters
type Counters struct {
	Committed uint64 `json:"committed"`
	Aborted   uint64 `json:"aborted"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Program || nil == node.Ledger {
		return fault.DatabaseIsNotSet
	}

	tags := node.Program.Tags()

	reply.Chain = mode.ChainName()
	reply.Mode = currentMode()
	reply.ProgramID = node.Program.ID()
	reply.StateTag = string(tags.State)
	reply.VaultTag = string(tags.Vault)
	reply.RentFloor = node.Program.RentFloor()
	reply.Faucet = node.Ledger.FaucetEnabled()
	reply.RPCs = node.counter.Uint64()
	reply.Transactions.Committed, reply.Transactions.Aborted = node.Ledger.Counts()
	reply.Audit = node.Ledger.LastAudit()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

func currentMode() string {
	if mode.Is(mode.Normal) {
		return mode.Normal.String()
	}
	return mode.Stopped.String()
}
