// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/ledger"
)

// default derivation tags
const (
	DefaultStateTag = "state"
	DefaultVaultTag = "vault"
)

// DefaultProgramID - program id used when none is configured
var DefaultProgramID = derivation.Address(sha3.Sum256([]byte("vaultd custodial vault program")))

// Tags - the fixed seeds separating record and vault addresses
type Tags struct {
	State []byte
	Vault []byte
}

// DefaultTags - "state" and "vault"
func DefaultTags() Tags {
	return Tags{
		State: []byte(DefaultStateTag),
		Vault: []byte(DefaultVaultTag),
	}
}

// Program - the vault program bound to one ledger
type Program struct {
	log     *logger.L
	id      derivation.Address
	tags    Tags
	ledger  *ledger.Ledger
	testing bool
}

// New - create the program
//
// tags are copied and cannot be changed afterwards; testing selects
// which network owner keys must belong to
func New(id derivation.Address, tags Tags, l *ledger.Ledger, testing bool) (*Program, error) {
	if nil == l {
		return nil, fault.DatabaseIsNotSet
	}
	if 0 == len(tags.State) || 0 == len(tags.Vault) {
		return nil, fault.MissingParameters
	}
	if len(tags.State) > derivation.MaxSeedLength || len(tags.Vault) > derivation.MaxSeedLength {
		return nil, fault.SeedTooLong
	}
	if bytes.Equal(tags.State, tags.Vault) {
		return nil, fault.InvalidOperation
	}

	p := &Program{
		log: logger.New("vault"),
		id:  id,
		tags: Tags{
			State: append([]byte{}, tags.State...),
			Vault: append([]byte{}, tags.Vault...),
		},
		ledger:  l,
		testing: testing,
	}
	p.log.Infof("program: %s  state tag: %q  vault tag: %q", id, p.tags.State, p.tags.Vault)
	return p, nil
}

// ID - the program id
func (p *Program) ID() derivation.Address {
	return p.id
}

// Tags - copy of the configured tags
func (p *Program) Tags() Tags {
	return Tags{
		State: append([]byte{}, p.tags.State...),
		Vault: append([]byte{}, p.tags.Vault...),
	}
}

// RentFloor - deposits must exceed this
func (p *Program) RentFloor() uint64 {
	return p.ledger.Rent().MinimumBalance(0)
}

// RecordAddress - derived record address and bump of an owner
func (p *Program) RecordAddress(owner derivation.Address) (derivation.Address, derivation.Bump, error) {
	return derivation.Derive(p.tags.State, owner, p.id)
}

// VaultAddress - derived vault address and bump of an owner
func (p *Program) VaultAddress(owner derivation.Address) (derivation.Address, derivation.Bump, error) {
	return derivation.Derive(p.tags.Vault, owner, p.id)
}

// tokens are only issued under this program's id and tags
func (p *Program) recordAuthority(owner derivation.Address, bump derivation.Bump) *derivation.Authority {
	return derivation.Authorise(p.tags.State, owner, bump, p.id)
}

func (p *Program) vaultAuthority(owner derivation.Address, bump derivation.Bump) *derivation.Authority {
	return derivation.Authorise(p.tags.Vault, owner, bump, p.id)
}
