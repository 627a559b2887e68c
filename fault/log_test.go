// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
)

func TestPanicHelpers(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := fault.Initialise()
	assert.Nil(t, err, "wrong Initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise")

	assert.NotPanics(t, func() { fault.PanicIfError("no error", nil) }, "panic without error")
	assert.Panics(t, func() { fault.PanicIfError("write", fault.DatabaseIsNotSet) }, "no panic on error")
	assert.Panics(t, func() { fault.Panicf("record: %d", 1) }, "no panic")
}
