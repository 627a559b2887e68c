// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vaultd/fault"
)

// limits on the seed list
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

const marker = "ProgramDerivedAddress"

// Bump - the trailing seed byte that pushes a digest off the curve
type Bump uint8

// CreateAddress - digest the seeds with the program id
//
// fails with OnCurve if the digest is a valid ed25519 point
func CreateAddress(seeds [][]byte, program Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, fault.TooManySeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Address{}, fault.SeedTooLong
		}
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write([]byte(marker))

	a := Address{}
	copy(a[:], h.Sum(nil))

	if onCurve(a[:]) {
		return Address{}, fault.OnCurve
	}
	return a, nil
}

// Derive - find the highest bump giving an off curve address for tag and owner
func Derive(tag []byte, owner Address, program Address) (Address, Bump, error) {
	for b := 255; b >= 0; b -= 1 {
		bump := Bump(b)
		a, err := CreateAddress(seedList(tag, owner, bump), program)
		if nil == err {
			return a, bump, nil
		}
		if fault.OnCurve != err {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.BumpNotFound
}

func seedList(tag []byte, owner Address, bump Bump) [][]byte {
	return [][]byte{tag, owner[:], {byte(bump)}}
}

// IsOnCurve - true if the address is a valid ed25519 public key
//
// derived addresses are never on the curve so no private key exists for them
func IsOnCurve(a Address) bool {
	return onCurve(a[:])
}

func onCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}
