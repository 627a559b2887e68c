// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Owner - deterministic test network key for index n
func Owner(n int) *account.PrivateKey {
	seed := sha3.Sum256([]byte(fmt.Sprintf("vaultd test owner %d", n)))
	return &account.PrivateKey{
		Test:       true,
		PrivateKey: ed25519.NewKeyFromSeed(seed[:]),
	}
}

// SetupTestLogger - file logger in a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// TempDatabase - path of a fresh database directory inside the scratch area
func TempDatabase(name string) string {
	path := fmt.Sprintf("%s/%s.leveldb", dir, name)
	_ = os.RemoveAll(path)
	return path
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
