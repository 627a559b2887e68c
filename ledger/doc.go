// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - balances and program owned accounts
//
// Every address maps to an account holding lamports, the owning
// program and a data area.  Accounts owned by the system program
// hold plain balances and are debited only with a Signer for their
// address; accounts owned by any other program are debited only by
// that program.  An account with no lamports and no data does not
// exist: it is created by the first credit and removed when drained.
//
// All changes happen inside Execute, which runs one transaction at a
// time and either commits every effect or none of them.
package ledger
