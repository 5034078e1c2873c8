// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, errTest, Log(errTest))
	assert.Contains(t, buf.String(), "test error")
	assert.Contains(t, buf.String(), "errors_test.go")
}

func TestLog1(t *testing.T) {
	buf := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, Log1(0, errTest))
	assert.Contains(t, buf.String(), "test error")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.PanicsWithValue(t, errTest, func() { Must(errTest) })
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("loading: %w", errTest)
	assert.True(t, Is(err, errTest))
	joined := Join(New("other"), err)
	assert.True(t, Is(joined, errTest))
	assert.Nil(t, Join())
}
