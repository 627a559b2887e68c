// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// AccountStorageOverhead - bytes charged for every account on top of its data
const AccountStorageOverhead = 128

// defaults for the rent schedule
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2
)

// Rent - the rent schedule
type Rent struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  uint64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// DefaultRent - the standard schedule
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance - lamports that make an account of dataLength bytes rent exempt
func (rent Rent) MinimumBalance(dataLength int) uint64 {
	return (AccountStorageOverhead + uint64(dataLength)) * rent.LamportsPerByteYear * rent.ExemptionThreshold
}

// IsExempt - true if balance covers an account of dataLength bytes
func (rent Rent) IsExempt(balance uint64, dataLength int) bool {
	return balance >= rent.MinimumBalance(dataLength)
}
