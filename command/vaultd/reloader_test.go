// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
)

func TestReloaderAppliesRateLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "local"
M.rate_limit = {
    limit = 12,
    burst = 3,
}
return M
`)
	defer cleanup()

	applied := make(chan ratelimit.Configuration, 1)
	setLimit := func(cfg ratelimit.Configuration) error {
		applied <- cfg
		return nil
	}

	channels := newWatcherChannel()
	r := newReloader(fileName, nil, channels, setLimit)
	r.delay = 10 * time.Millisecond

	shutdown := make(chan struct{})
	done := make(chan struct{})
	go func() {
		r.Run(nil, shutdown)
		close(done)
	}()

	// removal keeps the current settings
	channels.remove <- struct{}{}
	channels.change <- struct{}{}

	select {
	case cfg := <-applied:
		assert.Equal(t, ratelimit.Configuration{Limit: 12, Burst: 3}, cfg, "wrong rate limit")
	case <-time.After(5 * time.Second):
		t.Fatal("rate limit not applied")
	}

	close(shutdown)
	<-done
	assert.Equal(t, 0, len(applied), "unexpected extra update")
}

func TestReloaderBadConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "nowhere"
return M
`)
	defer cleanup()

	called := false
	r := newReloader(fileName, nil, newWatcherChannel(), func(ratelimit.Configuration) error {
		called = true
		return nil
	})

	r.reload()
	assert.False(t, called, "rate limit set from invalid configuration")
}
