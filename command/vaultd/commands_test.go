// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/vault"
)

func TestProgramDetails(t *testing.T) {
	options := &Configuration{
		Program: ProgramType{
			StateTag: vault.DefaultStateTag,
			VaultTag: vault.DefaultVaultTag,
		},
		Rent: ledger.DefaultRent(),
	}

	owner := fixtures.Owner(1).Account()
	report, err := programDetails(options, []string{owner.String()})
	assert.Nil(t, err, "wrong programDetails")

	assert.Equal(t, vault.DefaultProgramID, report.ProgramID, "wrong program id")
	assert.Equal(t, uint64(890880), report.RentFloor, "wrong rent floor")
	assert.Equal(t, uint64(953520), report.RecordRent, "wrong record rent")
	assert.Equal(t, 1, len(report.Owners), "wrong owner count")

	address := derivation.AddressFromAccount(owner)
	record, recordBump, err := derivation.Derive([]byte(vault.DefaultStateTag), address, vault.DefaultProgramID)
	assert.Nil(t, err, "wrong Derive")
	v, vaultBump, err := derivation.Derive([]byte(vault.DefaultVaultTag), address, vault.DefaultProgramID)
	assert.Nil(t, err, "wrong Derive")

	o := report.Owners[0]
	assert.Equal(t, address, o.Address, "wrong owner address")
	assert.Equal(t, record, o.Record, "wrong record")
	assert.Equal(t, recordBump, o.RecordBump, "wrong record bump")
	assert.Equal(t, v, o.Vault, "wrong vault")
	assert.Equal(t, vaultBump, o.VaultBump, "wrong vault bump")
	assert.NotEqual(t, o.Record, o.Vault, "record and vault collide")
}

func TestProgramDetailsBadOwner(t *testing.T) {
	options := &Configuration{
		Program: ProgramType{
			StateTag: vault.DefaultStateTag,
			VaultTag: vault.DefaultVaultTag,
		},
		Rent: ledger.DefaultRent(),
	}

	_, err := programDetails(options, []string{"not-an-account"})
	assert.NotNil(t, err, "no error for bad owner")
}

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.crt", getFilenameWithDirectory(nil, "rpc.crt"), "wrong default")
	assert.Equal(t, "/etc/vaultd/rpc.crt", getFilenameWithDirectory([]string{"/etc/vaultd"}, "rpc.crt"), "wrong directory")
}
