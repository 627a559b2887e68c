// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "within burst")
	}

	zero := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(zero), "zero burst cannot reserve")
}

func TestGroupUpdate(t *testing.T) {
	var g ratelimit.Group

	l1 := g.New(ratelimit.Configuration{Limit: 10, Burst: 5})
	l2 := g.New(ratelimit.Configuration{Limit: 20, Burst: 7})
	assert.Equal(t, 2, g.Count(), "count")

	err := g.Update(ratelimit.Configuration{Limit: 50, Burst: 25})
	assert.Nil(t, err, "update")

	for _, l := range []*rate.Limiter{l1, l2} {
		assert.Equal(t, rate.Limit(50), l.Limit(), "limit")
		assert.Equal(t, 25, l.Burst(), "burst")
	}

	assert.Equal(t, fault.InvalidCount, g.Update(ratelimit.Configuration{Limit: 0, Burst: 1}), "zero limit")
	assert.Equal(t, fault.InvalidCount, g.Update(ratelimit.Configuration{Limit: 1, Burst: 0}), "zero burst")
	assert.Equal(t, rate.Limit(50), l1.Limit(), "unchanged after rejected update")
}
