// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/chain"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/mode"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assert.Equal(t, fault.InvalidChain, mode.Initialise("no-such-chain"), "bad chain")

	err := mode.Initialise(chain.Local)
	assert.Nil(t, err, "initialise")
	defer mode.Finalise()

	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(chain.Local), "second initialise")

	assert.Equal(t, chain.Local, mode.ChainName(), "chain name")
	assert.True(t, mode.IsTesting(), "local is a testing chain")
	assert.True(t, mode.Is(mode.Normal), "normal after initialise")

	mode.Set(mode.Stopped)
	assert.True(t, mode.Is(mode.Stopped), "stopped")
	assert.Equal(t, "Stopped", mode.Stopped.String(), "string")
	assert.Equal(t, "*Unknown*", mode.Mode(99).String(), "unknown string")
}
