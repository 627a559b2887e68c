// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/storage"
)

// AuditReport - totals from one scan of the account pool
type AuditReport struct {
	Accounts  uint64    `json:"accounts"`
	Lamports  uint64    `json:"lamports"`
	BelowRent uint64    `json:"belowRent"`
	Corrupt   uint64    `json:"corrupt"`
	Timestamp time.Time `json:"timestamp"`
}

// Audit - scan every committed account
//
// accounts whose balance does not cover the rent exempt minimum for
// their data are counted and logged; nothing is modified
func (l *Ledger) Audit() (AuditReport, error) {
	l.Lock()
	defer l.Unlock()

	report := AuditReport{}

	cursor := storage.Pool.Accounts.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		account, err := UnpackAccount(value)
		if nil != err {
			l.log.Errorf("audit: account: %x  error: %s", key, err)
			report.Corrupt += 1
			return nil
		}

		report.Accounts += 1
		report.Lamports += account.Lamports
		if !l.rent.IsExempt(account.Lamports, len(account.Data)) {
			report.BelowRent += 1
			l.log.Debugf("audit: account: %x  lamports: %d  below rent for %d bytes", key, account.Lamports, len(account.Data))
		}
		return nil
	})
	if nil != err {
		return report, err
	}

	report.Timestamp = time.Now().UTC()
	l.lastScan = report
	return report, nil
}

// LastAudit - result of the most recent scan
func (l *Ledger) LastAudit() AuditReport {
	l.Lock()
	defer l.Unlock()
	return l.lastScan
}

// Auditor - background process running Audit periodically
type Auditor struct {
	log      *logger.L
	ledger   *Ledger
	interval time.Duration
}

// NewAuditor - create the background auditor
func NewAuditor(l *Ledger, interval time.Duration) *Auditor {
	return &Auditor{
		log:      logger.New("audit"),
		ledger:   l,
		interval: interval,
	}
}

// Run - background loop, stops when shutdown is closed
func (auditor *Auditor) Run(args interface{}, shutdown <-chan struct{}) {
	log := auditor.log

	log.Info("starting…")

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case <-time.After(auditor.interval):
			report, err := auditor.ledger.Audit()
			if nil != err {
				log.Errorf("audit error: %s", err)
				continue loop
			}
			log.Infof("accounts: %d  lamports: %d  below rent: %d  corrupt: %d", report.Accounts, report.Lamports, report.BelowRent, report.Corrupt)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
