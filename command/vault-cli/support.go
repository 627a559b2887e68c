// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/command/vault-cli/rpccalls"
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/util"
)

// map the accepted network aliases
func networkName(network string) (string, error) {
	switch network {
	case "bitmark", "live":
		return "bitmark", nil
	case "testing", "test":
		return "testing", nil
	case "local", "regression":
		return "local", nil
	default:
		return "", fmt.Errorf("network: %q can only be bitmark/testing/local", network)
	}
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if "" == m.connect {
		return nil, fmt.Errorf("no vaultd connection, use --connect")
	}
	hostPort, err := util.CanonicalIPandPort(m.connect)
	if nil != err {
		return nil, fmt.Errorf("connect: %q  error: %s", m.connect, err)
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", hostPort)
	}
	return rpccalls.NewClient(m.testnet, hostPort, m.verbose, m.e)
}

// private key of the identity, prompting for the password if needed
func privateKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptCheckPasswordReader()
		if nil != err {
			return nil, err
		}
	}
	return m.identity.Private(password)
}

// an explicit base58 address, or the identity's own address
func addressOrIdentity(s string, m *metadata) (derivation.Address, error) {
	if "" != s {
		return derivation.AddressFromBase58(s)
	}
	owner, err := m.identity.Owner()
	if nil != err {
		return derivation.Address{}, err
	}
	return derivation.AddressFromAccount(owner), nil
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}
