// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import "errors"

var (
	ErrUnknownCategory   = errors.New("unknown allocation category")
	ErrDuplicateCategory = errors.New("duplicate allocation category")
	ErrNullAllocation    = errors.New("allocation to null address")
)
