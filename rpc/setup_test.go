// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/chain"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/mode"
	"github.com/bitmark-inc/vaultd/rpc"
	"github.com/bitmark-inc/vaultd/rpc/listeners"
	"github.com/bitmark-inc/vaultd/rpc/node"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vault"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(chain.Local)
	defer func() { _ = mode.Finalise() }()

	err := storage.Initialise(fixtures.TempDatabase("rpc"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	l := ledger.New(ledger.DefaultRent(), false)
	p, err := vault.New(vault.DefaultProgramID, vault.DefaultTags(), l, true)
	if nil != err {
		t.Fatalf("program create error: %s", err)
	}

	cert, key, err := certgen.NewTLSCertPair("vaultd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("generate certificate error: %s", err)
	}

	port := rand.Intn(30000) + 30000
	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Certificate:        string(cert),
		PrivateKey:         string(key),
	}
	httpsConfiguration := listeners.HTTPSConfiguration{}
	rateLimit := ratelimit.Configuration{Limit: 100, Burst: 100}

	assert.Equal(t, fault.NotInitialised, rpc.SetRateLimit(rateLimit), "set before initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, rateLimit, "1.0", p, l)
	assert.Nil(t, err, "wrong Initialise")
	defer func() { _ = rpc.Finalise() }()

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, rateLimit, "1.0", p, l)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise")

	assert.Nil(t, rpc.SetRateLimit(ratelimit.Configuration{Limit: 10, Burst: 10}), "wrong SetRateLimit")
	assert.Equal(t, fault.InvalidCount, rpc.SetRateLimit(ratelimit.Configuration{}), "wrong empty SetRateLimit")

	conn, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.False(t, reply.Faucet, "wrong faucet")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong rpc count")
}
