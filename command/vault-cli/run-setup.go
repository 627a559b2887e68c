// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/command/vault-cli/configuration"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/util"
)

type generateReply struct {
	Seed    string           `json:"seed"`
	Account *account.Account `json:"account"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewBase58Seed(m.testnet)
	if nil != err {
		return err
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	printJson(m.w, generateReply{
		Seed:    seed,
		Account: privateKey.Account(),
	})
	return nil
}

type setupReply struct {
	File    string `json:"file"`
	Connect string `json:"connect"`
	Account string `json:"account"`
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.connect {
		return fmt.Errorf("vaultd IP and port is required, use --connect")
	}
	hostPort, err := util.CanonicalIPandPort(m.connect)
	if nil != err {
		return fmt.Errorf("connect: %q  error: %s", m.connect, err)
	}

	seed := c.String("seed")
	if "" == seed {
		seed, err = account.NewBase58Seed(m.testnet)
		if nil != err {
			return err
		}
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPasswordReader()
		if nil != err {
			return err
		}
	} else if len(password) < minimumPasswordLength {
		return fault.InvalidPassword
	}

	identity, err := configuration.New(hostPort, seed, password)
	if nil != err {
		return err
	}
	if identity.TestNet != m.testnet {
		return fault.WrongNetworkForPublicKey
	}

	if m.verbose {
		fmt.Fprintf(m.e, "saving identity: %s\n", m.file)
	}
	err = configuration.Save(m.file, identity)
	if nil != err {
		return err
	}

	printJson(m.w, setupReply{
		File:    m.file,
		Connect: identity.Connect,
		Account: identity.Account,
	})
	return nil
}
