// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vaultd/derivation"
	"github.com/bitmark-inc/vaultd/fault"
)

// record layout
const (
	discriminatorLength = 8
	RecordSize          = discriminatorLength + 1
)

// first 8 bytes of SHA3-256("account:VaultState")
var discriminator = func() []byte {
	d := sha3.Sum256([]byte("account:VaultState"))
	return d[:discriminatorLength]
}()

// Record - persisted state of an initialised vault
type Record struct {
	Bump derivation.Bump
}

// Pack - discriminator ++ bump
func (record *Record) Pack() []byte {
	buffer := make([]byte, 0, RecordSize)
	buffer = append(buffer, discriminator...)
	return append(buffer, byte(record.Bump))
}

// UnpackRecord - decode record account data
func UnpackRecord(data []byte) (*Record, error) {
	if RecordSize != len(data) {
		return nil, fault.InvalidRecord
	}
	if !bytes.Equal(discriminator, data[:discriminatorLength]) {
		return nil, fault.InvalidRecord
	}
	return &Record{
		Bump: derivation.Bump(data[discriminatorLength]),
	}, nil
}
