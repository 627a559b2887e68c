// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/fault"
)

func TestMakeSelfSignedCertificate(t *testing.T) {
	dir, err := ioutil.TempDir("", "vaultd-cert")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, false, []string{"127.0.0.1"})
	assert.Nil(t, err, "wrong makeSelfSignedCertificate")

	certificate, key, err := readKeyPair(certificateFile, keyFile)
	assert.Nil(t, err, "wrong readKeyPair")

	_, err = tls.X509KeyPair([]byte(certificate), []byte(key))
	assert.Nil(t, err, "generated pair does not load")

	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.CertificateFileExists, err, "wrong error")

	_ = os.Remove(certificateFile)
	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.KeyFileExists, err, "wrong error")
}

func TestReadKeyPairMissing(t *testing.T) {
	dir, err := ioutil.TempDir("", "vaultd-cert")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	_, _, err = readKeyPair(filepath.Join(dir, "none.crt"), filepath.Join(dir, "none.key"))
	assert.Equal(t, fault.FileNotFound, err, "wrong error")
}
