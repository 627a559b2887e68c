// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client JSON-RPC over TLS and the optional HTTPS front end
//
// services:
//   Vault.Initialise  Vault.Deposit  Vault.Withdraw  Vault.Close  Vault.Info
//   Account.Balance   Account.Fund
//   Node.Info
package rpc
