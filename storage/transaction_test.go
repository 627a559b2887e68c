// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *PoolHandle, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)

	handle := &PoolHandle{
		prefix:     'T',
		limit:      []byte{'U'},
		dataAccess: mock,
	}
	return newTransaction(mock), handle, mock, ctl
}

func TestTransactionBegin(t *testing.T) {
	tx, _, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	gomock.InOrder(
		mock.EXPECT().Begin().Return(nil).Times(1),
		mock.EXPECT().Begin().Return(fault.TransactionAlreadyStarted).Times(1),
	)

	err := tx.Begin()
	assert.Nil(t, err, "first time Begin should not return any error")

	err = tx.Begin()
	assert.Equal(t, fault.TransactionAlreadyStarted, err, "second time Begin should return error")
}

func TestTransactionPutPrefixesKey(t *testing.T) {
	tx, handle, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Put([]byte("Tkey"), []byte("value")).Times(1)
	mock.EXPECT().Put([]byte("Tcount"), []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02}).Times(1)
	mock.EXPECT().Delete([]byte("Tgone")).Times(1)

	tx.Put(handle, []byte("key"), []byte("value"))
	tx.PutN(handle, []byte("count"), 0x0102)
	tx.Delete(handle, []byte("gone"))
}

func TestTransactionCommitAndAbort(t *testing.T) {
	tx, _, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Commit().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)
	mock.EXPECT().InUse().Return(false).Times(1)

	assert.Nil(t, tx.Commit(), "commit")
	tx.Abort()
	assert.False(t, tx.InUse(), "in use")
}
