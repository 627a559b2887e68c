// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/vaultd/fault"
)

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Configuration - requests per second and burst size
type Configuration struct {
	Limit float64 `gluamapper:"limit" json:"limit"`
	Burst int     `gluamapper:"burst" json:"burst"`
}

// Group - the limiters of all RPC services, updated together
type Group struct {
	sync.Mutex
	limiters []*rate.Limiter
}

// New - create a limiter that follows later updates to the group
func (g *Group) New(configuration Configuration) *rate.Limiter {
	g.Lock()
	defer g.Unlock()

	limiter := rate.NewLimiter(rate.Limit(configuration.Limit), configuration.Burst)
	g.limiters = append(g.limiters, limiter)
	return limiter
}

// Update - apply a new limit and burst to every limiter in the group
func (g *Group) Update(configuration Configuration) error {
	if configuration.Limit <= 0 || configuration.Burst <= 0 {
		return fault.InvalidCount
	}

	g.Lock()
	defer g.Unlock()

	for _, limiter := range g.limiters {
		limiter.SetLimit(rate.Limit(configuration.Limit))
		limiter.SetBurst(configuration.Burst)
	}
	return nil
}

// Count - number of limiters in the group
func (g *Group) Count() int {
	g.Lock()
	defer g.Unlock()
	return len(g.limiters)
}
