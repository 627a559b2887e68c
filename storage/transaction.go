// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - atomic group of pool writes
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionImpl - transaction over one Access
type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

// Begin - start collecting writes
func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

// Put - queue a write to a pool
func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// PutN - queue a big endian uint64 write to a pool
func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

// Delete - queue a removal from a pool
func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read including pending writes
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// GetN - read a count including pending writes
func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

// Has - check a key including pending writes
func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// InUse - true while a transaction is open
func (t *TransactionImpl) InUse() bool {
	return t.dataAccess.InUse()
}

// Commit - write all pending changes
func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

// Abort - discard all pending changes
func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}
