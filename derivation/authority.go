// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

// Authority - key-less signing token for one derived address
type Authority struct {
	tag     []byte
	owner   Address
	bump    Bump
	program Address
}

// Authorise - create the token for a tag, owner and bump under a program
func Authorise(tag []byte, owner Address, bump Bump, program Address) *Authority {
	t := make([]byte, len(tag))
	copy(t, tag)
	return &Authority{
		tag:     t,
		owner:   owner,
		bump:    bump,
		program: program,
	}
}

// Address - the address these seeds reproduce, or error if they do not
// yield an off curve address
func (authority *Authority) Address() (Address, error) {
	return CreateAddress(authority.Seeds(), authority.program)
}

// Signs - true if the token reproduces the address
func (authority *Authority) Signs(address Address) bool {
	a, err := authority.Address()
	if nil != err {
		return false
	}
	return a == address
}

// Program - the program the token was issued for
func (authority *Authority) Program() Address {
	return authority.program
}

// Bump - the bump carried by the token
func (authority *Authority) Bump() Bump {
	return authority.bump
}

// Seeds - copy of the seed list
func (authority *Authority) Seeds() [][]byte {
	tag := make([]byte, len(authority.tag))
	copy(tag, authority.tag)
	return seedList(tag, authority.owner, authority.bump)
}
