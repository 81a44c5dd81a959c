// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

// Package smath extends avalanchego's checked arithmetic with the
// division operators it lacks. Add/Sub/Mul are used directly from
// [github.com/ava-labs/avalanchego/utils/math] at call sites.
package safemath

import "errors"

var ErrDivisionByZero = errors.New("division by zero")

// Div64 returns a/b, truncated toward zero.
func Div64(a uint64, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Mod64 returns a%b.
func Mod64(a uint64, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a % b, nil
}
