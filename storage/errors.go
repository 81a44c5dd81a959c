// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInvalidBalance        = errors.New("invalid balance")
	ErrCapExceeded           = errors.New("supply cap exceeded")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrInvalidSchedule       = errors.New("invalid schedule ordering")
)
