// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
)

func TestParseListenAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	addrs := []string{"*:2130", "[::1]:2131", "127.0.0.1:2132", " 10.0.0.1 :2133"}
	ipType, err := parseListenAddress(addrs, log)
	assert.Nil(t, err, "valid addresses")
	assert.Equal(t, []string{"tcp", "tcp6", "tcp4", "tcp4"}, ipType, "networks")
	assert.Equal(t, []string{"[::]:2130", "[::1]:2131", "127.0.0.1:2132", "10.0.0.1:2133"}, addrs, "canonical")

	for _, listen := range []string{"[::1:2130", "::1]:2130", "localhost:2130", "127.0.0.1", "127.0.0.1:65536", "*", ""} {
		_, err := parseListenAddress([]string{listen}, log)
		assert.Equal(t, fault.InvalidIpAddress, err, "wrong error for: %q", listen)
	}
}
