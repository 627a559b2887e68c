// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
)

// pause after a change event so that a partially written file is not read
const reloadDelay = 2 * time.Second

type rateLimitSetter func(ratelimit.Configuration) error

// reloader - background process re-reading the configuration on change
//
// only rate limits are applied while running; everything else needs a restart
type reloader struct {
	log       *logger.L
	fileName  string
	variables map[string]string
	channels  WatcherChannel
	delay     time.Duration
	setLimit  rateLimitSetter
}

func newReloader(fileName string, variables map[string]string, channels WatcherChannel, setLimit rateLimitSetter) *reloader {
	return &reloader{
		log:       logger.New("reload"),
		fileName:  fileName,
		variables: variables,
		channels:  channels,
		delay:     reloadDelay,
		setLimit:  setLimit,
	}
}

// Run - background loop, stops when shutdown is closed
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channels.remove:
			log.Warnf("configuration: %q removed, keeping current settings", r.fileName)

		case <-r.channels.change:
			select {
			case <-shutdown:
				break loop
			case <-time.After(r.delay):
			}
			r.reload()
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

func (r *reloader) reload() {
	options, err := getConfiguration(r.fileName, r.variables)
	if nil != err {
		r.log.Errorf("failed to read configuration from: %q  error: %s", r.fileName, err)
		return
	}

	err = r.setLimit(options.RateLimit)
	if nil != err {
		r.log.Errorf("rate limit: %+v  error: %s", options.RateLimit, err)
		return
	}
	r.log.Infof("rate limit: %.2f/s  burst: %d", options.RateLimit.Limit, options.RateLimit.Burst)
}
