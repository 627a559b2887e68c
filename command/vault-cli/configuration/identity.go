// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

// Identity - identity file data format, only Data is encrypted
type Identity struct {
	Connect string `json:"connect"`
	TestNet bool   `json:"testnet"`
	Account string `json:"account"`
	Salt    string `json:"salt"`
	Data    string `json:"data"`
}

// New - encrypt a seed into a new identity
func New(connect string, seed string, password string) (*Identity, error) {
	if "" == connect {
		return nil, fault.MissingParameters
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return nil, err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return nil, err
	}

	return &Identity{
		Connect: connect,
		TestNet: privateKey.IsTesting(),
		Account: privateKey.Account().String(),
		Salt:    salt.String(),
		Data:    encrypted,
	}, nil
}

// Load - read an identity file
func Load(filename string) (*Identity, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	identity := &Identity{}
	dec := json.NewDecoder(f)
	err = dec.Decode(identity)
	if nil != err {
		return nil, err
	}

	return identity, nil
}

// Save - write an identity file, the previous version is kept as .bk
func Save(filename string, identity *Identity) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(identity, "", "  ")
	if nil != err {
		return err
	}

	err = os.MkdirAll(filepath.Dir(filename), 0700)
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(tempFile, append(b, '\n'), 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Owner - the public account, no password needed
func (identity *Identity) Owner() (*account.Account, error) {
	return account.AccountFromBase58(identity.Account)
}

// Private - decrypt the seed and regenerate the private key
func (identity *Identity) Private(password string) (*account.PrivateKey, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if err != nil || identity.Data == "" {
		return nil, fault.NotPrivateKey
	}

	key, err := generateKey(password, salt)
	if err != nil {
		return nil, err
	}

	seed, err := decryptData(identity.Data, key)
	if err != nil {
		return nil, fault.WrongPassword
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if err != nil {
		return nil, err
	}

	if privateKey.Account().String() != identity.Account {
		return nil, fault.InvalidOwner
	}
	return privateKey, nil
}
