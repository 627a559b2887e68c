// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
)

const watchTimeout = 5 * time.Second

func TestFileWatcherEvents(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "vaultd-watch")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "vaultd.conf")
	err = ioutil.WriteFile(fileName, []byte("return {}"), 0600)
	assert.Nil(t, err, "wrong WriteFile")

	channels := newWatcherChannel()
	w, err := newFileWatcher(fileName, logger.New(fixtures.LogCategory), channels)
	assert.Nil(t, err, "wrong newFileWatcher")
	defer w.Stop()

	err = w.Start()
	assert.Nil(t, err, "wrong Start")

	// other files in the directory are ignored
	err = ioutil.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0600)
	assert.Nil(t, err, "wrong WriteFile")

	err = ioutil.WriteFile(fileName, []byte("return { chain = \"local\" }"), 0600)
	assert.Nil(t, err, "wrong WriteFile")

	select {
	case <-channels.change:
	case <-time.After(watchTimeout):
		t.Fatal("no change event")
	}

	err = os.Remove(fileName)
	assert.Nil(t, err, "wrong Remove")

	select {
	case <-channels.remove:
	case <-time.After(watchTimeout):
		t.Fatal("no remove event")
	}
}

func TestFileWatcherMissingFile(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := newFileWatcher("/no/such/dir/vaultd.conf", logger.New(fixtures.LogCategory), newWatcherChannel())
	assert.Equal(t, fault.FileNotFound, err, "wrong error")
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	w := &fileWatcher{
		log: logger.New(fixtures.LogCategory),
	}
	ch := make(chan struct{}, 1)

	w.sendEvent(ch, "test")
	w.sendEvent(ch, "test")

	assert.Equal(t, 1, len(ch), "wrong queued events")
}

func TestWatcherEventClassification(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Write}), "write")

	assert.True(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Create}), "create")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Chmod}), "chmod")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Remove}), "remove")
}
