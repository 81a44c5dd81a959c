// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/arcadenet/arcade/consts"
)

// State
// 0x0/ (balance)
//   -> [owner] => balance
// 0x1/ (allowance)
//   -> [owner|spender] => amount
// 0x2/ (supply)
// 0x3/ (tranche counter)
// 0x4/ (discount schedule)
// 0x5/ (listing)
//   -> [app|item|currency] => price
// 0x6/ (address book)
//   -> [slot] => address
// 0x7/ (retained value vault)
// 0x8/ (genesis marker)
const (
	balancePrefix   = 0x0
	allowancePrefix = 0x1
	supplyPrefix    = 0x2
	tranchePrefix   = 0x3
	schedulePrefix  = 0x4
	listingPrefix   = 0x5
	addressPrefix   = 0x6
	vaultPrefix     = 0x7
	genesisPrefix   = 0x8
)

// Slot identifies an entry in the address book. The seven allocation
// buckets come first so a slot doubles as a bucket index.
type Slot uint8

const (
	StrategicSale Slot = iota
	PrivateSale
	PublicSale
	Team
	Advisor
	Marketing
	Ecosystem

	// Collection receives item-purchase proceeds.
	Collection

	NumBuckets = int(Ecosystem) + 1
)

func (s Slot) String() string {
	switch s {
	case StrategicSale:
		return "strategicSale"
	case PrivateSale:
		return "privateSale"
	case PublicSale:
		return "publicSale"
	case Team:
		return "team"
	case Advisor:
		return "advisor"
	case Marketing:
		return "marketing"
	case Ecosystem:
		return "ecosystem"
	case Collection:
		return "collection"
	default:
		return "unknown"
	}
}

var (
	supplyKey   = []byte{supplyPrefix}
	trancheKey  = []byte{tranchePrefix}
	scheduleKey = []byte{schedulePrefix}
	vaultKey    = []byte{vaultPrefix}
	genesisKey  = []byte{genesisPrefix}
)

// [balancePrefix] + [owner]
func BalanceKey(owner ids.ShortID) (k []byte) {
	k = make([]byte, 1+consts.AddrLen)
	k[0] = balancePrefix
	copy(k[1:], owner[:])
	return
}

// [allowancePrefix] + [owner] + [spender]
func AllowanceKey(owner ids.ShortID, spender ids.ShortID) (k []byte) {
	k = make([]byte, 1+consts.AddrLen*2)
	k[0] = allowancePrefix
	copy(k[1:], owner[:])
	copy(k[1+consts.AddrLen:], spender[:])
	return
}

// [listingPrefix] + [app] + [item] + [currency]
func ListingKey(app uint64, item uint64, currency ids.ShortID) (k []byte) {
	k = make([]byte, 1+consts.Uint64Len*2+consts.AddrLen)
	k[0] = listingPrefix
	binary.BigEndian.PutUint64(k[1:], app)
	binary.BigEndian.PutUint64(k[1+consts.Uint64Len:], item)
	copy(k[1+consts.Uint64Len*2:], currency[:])
	return
}

// [addressPrefix] + [slot]
func AddressKey(slot Slot) (k []byte) {
	k = make([]byte, 1+consts.Uint8Len)
	k[0] = addressPrefix
	k[1] = byte(slot)
	return
}
