// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNullAccount   = errors.New("null account")
	ErrBlacklisted   = errors.New("account blacklisted")
	ErrItemNotFound  = errors.New("item not found")
	ErrPriceMismatch = errors.New("price mismatch")
	ErrNoTokenLedger = errors.New("no external token ledger configured")
)
