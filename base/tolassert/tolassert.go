// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"math"

	"github.com/stretchr/testify/assert"
)

// Float is a constraint for the float types compared with tolerance.
type Float interface {
	~float32 | ~float64
}

// EqualTol asserts that the given two numbers are about equal, with
// the difference between them at most the given tolerance.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math.Abs(float64(actual)-float64(expected)) > float64(tolerance) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}
