// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/vault"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "program", "p":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  program [ACCOUNT...]       (p)      - display the program id, tags, rent floor\n")
		fmt.Printf("                                        and the derived addresses for each owner\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	case "program", "p":
		report, err := programDetails(options, arguments)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		printJSON(report)

	default: // unknown commands fall through to normal start up
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

type ownerAddresses struct {
	Owner      string             `json:"owner"`
	Address    derivation.Address `json:"address"`
	Record     derivation.Address `json:"record"`
	RecordBump derivation.Bump    `json:"recordBump"`
	Vault      derivation.Address `json:"vault"`
	VaultBump  derivation.Bump    `json:"vaultBump"`
}

type programReport struct {
	ProgramID  derivation.Address `json:"programId"`
	StateTag   string             `json:"stateTag"`
	VaultTag   string             `json:"vaultTag"`
	RentFloor  uint64             `json:"rentFloor"`
	RecordRent uint64             `json:"recordRent"`
	Owners     []ownerAddresses   `json:"owners,omitempty"`
}

// derive the program's addresses without opening the database
func programDetails(options *Configuration, owners []string) (*programReport, error) {
	id, err := options.programID()
	if nil != err {
		return nil, err
	}
	tags := options.tags()

	report := &programReport{
		ProgramID:  id,
		StateTag:   options.Program.StateTag,
		VaultTag:   options.Program.VaultTag,
		RentFloor:  options.Rent.MinimumBalance(0),
		RecordRent: options.Rent.MinimumBalance(vault.RecordSize),
	}

	for _, o := range owners {
		acc, err := account.AccountFromBase58(o)
		if nil != err {
			return nil, err
		}
		owner := derivation.AddressFromAccount(acc)

		record, recordBump, err := derivation.Derive(tags.State, owner, id)
		if nil != err {
			return nil, err
		}
		v, vaultBump, err := derivation.Derive(tags.Vault, owner, id)
		if nil != err {
			return nil, err
		}

		report.Owners = append(report.Owners, ownerAddresses{
			Owner:      o,
			Address:    owner,
			Record:     record,
			RecordBump: recordBump,
			Vault:      v,
			VaultBump:  vaultBump,
		})
	}
	return report, nil
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	_, _ = os.Stdout.Write(b)
	_, _ = os.Stdout.WriteString("\n")
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
