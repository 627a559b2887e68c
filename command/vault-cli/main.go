// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/command/vault-cli/configuration"
	"github.com/bitmark-inc/vaultd/fault"
)

type metadata struct {
	file     string
	identity *configuration.Identity
	connect  string
	testnet  bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "vault-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " connect to vaultd on `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `FILE` [default: $XDG_CONFIG_HOME/vault-cli/NETWORK-identity.json]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: " override the identity's vaultd `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a recovery seed and account, will not store in identity file",
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "create the identity file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing recovery `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:   "initialise",
			Usage:  "create the vault record for the identity",
			Action: runInitialise,
		},
		{
			Name:      "deposit",
			Usage:     "move lamports into the empty vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*lamports to deposit `AMOUNT`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "move lamports from the vault back to the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*lamports to withdraw `AMOUNT`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:   "close",
			Usage:  "sweep the vault and record back to the identity",
			Action: runClose,
		},
		{
			Name:      "info",
			Usage:     "display derived addresses and balances",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is the identity",
				},
			},
			Action: runInfo,
		},
		{
			Name:      "balance",
			Usage:     "display the lamports held at an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, A",
					Value: "",
					Usage: " base58 `ADDRESS` default is the identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "fund",
			Usage:     "credit lamports from the testing faucet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, A",
					Value: "",
					Usage: " base58 `ADDRESS` default is the identity",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*lamports to credit `AMOUNT`",
				},
			},
			Action: runFund,
		},
		{
			Name:   "node",
			Usage:  "display vaultd status",
			Action: runNodeInfo,
		},
		{
			Name:  "version",
			Usage: "display vault-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the identity
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network, err := networkName(c.GlobalString("network"))
		if nil != err {
			return err
		}
		testnet := "bitmark" != network

		file := c.GlobalString("identity")
		if "" == file {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
			}
			file = path.Join(p, app.Name, network+"-identity.json")
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			connect: c.GlobalString("connect"),
			testnet: testnet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		switch command {
		case "generate":
			return nil

		case "setup":
			// do not run setup if there is an existing identity
			if _, err := os.Stat(file); nil == err {
				return fault.IdentityFileExists
			}
			return nil
		}

		identity, err := configuration.Load(file)
		if nil != err {
			// node status only needs a connection
			if "node" == command && "" != m.connect {
				return nil
			}
			return err
		}
		if identity.TestNet != testnet {
			return fmt.Errorf("identity: %q is not for network: %s", file, network)
		}
		m.identity = identity
		if "" == m.connect {
			m.connect = identity.Connect
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
