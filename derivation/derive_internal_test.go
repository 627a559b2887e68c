// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"
)

func TestOnCurve(t *testing.T) {
	for i := 0; i < 10; i += 1 {
		seed := sha3.Sum256([]byte{byte(i)})
		key := ed25519.NewKeyFromSeed(seed[:])
		assert.True(t, onCurve(key.Public().(ed25519.PublicKey)), "public key %d is a curve point", i)
	}
}

func TestSeedListOrder(t *testing.T) {
	owner := Address{1, 2, 3}
	seeds := seedList([]byte("vault"), owner, 254)

	assert.Equal(t, 3, len(seeds), "seed count")
	assert.Equal(t, []byte("vault"), seeds[0], "tag first")
	assert.Equal(t, owner[:], seeds[1], "owner second")
	assert.Equal(t, []byte{254}, seeds[2], "bump last")
}
