// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/util"
)

// seed layout: header ++ network ++ secret key ++ checksum
const (
	seedHeaderLength   = 3
	seedNetworkLength  = 1
	seedSecretLength   = 32
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + seedNetworkLength + seedSecretLength + seedChecksumLength
)

var (
	seedHeader = [seedHeaderLength]byte{0x5a, 0xfe, 0x01}
	seedNonce  = [24]byte{}
	seedIndex  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

// NewBase58Seed - generate a recovery seed
func NewBase58Seed(test bool) (string, error) {
	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader[:]...)
	if test {
		seed = append(seed, 0x01)
	} else {
		seed = append(seed, 0x00)
	}

	secret := make([]byte, seedSecretLength)
	if _, err := rand.Read(secret); nil != err {
		return "", err
	}
	seed = append(seed, secret...)

	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}

// PrivateKeyFromBase58Seed - regenerate the private key from a recovery seed
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	seed := util.FromBase58(seedBase58Encoded)
	if 0 == len(seed) {
		return nil, fault.CannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader[:], seed[:seedHeaderLength]) {
		return nil, fault.InvalidSeedHeader
	}

	var secret [seedSecretLength]byte
	secretStart := seedHeaderLength + seedNetworkLength
	copy(secret[:], seed[secretStart:checksumStart])

	expanded := secretbox.Seal([]byte{}, seedIndex[:], &seedNonce, &secret)

	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(expanded))
	if nil != err {
		return nil, err
	}

	return &PrivateKey{
		Test:       0x01 == seed[seedHeaderLength],
		PrivateKey: priv,
	}, nil
}
