// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"math"

	"github.com/ava-labs/avalanchego/ids"
)

const (
	Name     = "arcade"
	Symbol   = "ARCD"
	Decimals = 9

	MaxUint8  = uint8(math.MaxUint8)
	MaxUint64 = uint64(math.MaxUint64)

	Uint8Len  = 1
	Uint16Len = 2
	Uint64Len = 8
	Int64Len  = 8
	AddrLen   = ids.ShortIDLen
)

var (
	// Null is the burn/mint counterparty. Transfers to it are rejected;
	// mint events originate from it and burn events terminate at it.
	Null = ids.ShortEmpty

	// BaseCurrency marks listings settled in the network's base value.
	// It is deliberately the null address, matching the zero-address
	// convention of the source listings.
	BaseCurrency = ids.ShortEmpty

	// NativeCurrency marks listings settled in ARCD itself.
	NativeCurrency = ids.ShortID{0x01}
)
