// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/arcadenet/arcade/consts"
	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

type CustomAllocation struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// Bucket fixes one allocation category: the address its tranches mint
// into and the per-tranche release table. Addresses may be rotated later
// through the address book; release tables are fixed at genesis.
type Bucket struct {
	Category string   `json:"category"`
	Address  string   `json:"address"`
	Releases []uint64 `json:"releases"`
}

type Genesis struct {
	// Supply Parameters
	Cap uint64 `json:"cap"`

	// Admin may mint, burn, unlock, and manage listings and schedules.
	Admin string `json:"admin"`

	// Collection receives item-purchase proceeds.
	Collection string `json:"collection"`

	// Allocations
	CustomAllocation []*CustomAllocation `json:"customAllocation"`
	Buckets          []*Bucket           `json:"buckets"`

	// Initial discount windows, stored newest-first like any reset.
	DiscountWindows []storage.Window `json:"discountWindows"`
}

func Default() *Genesis {
	return &Genesis{
		// 5B whole tokens at 10^9 base units each.
		Cap: 5_000_000_000 * 1_000_000_000,
	}
}

func New(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal genesis %s: %w", string(b), err)
		}
	}
	return g, nil
}

func ParseAddress(s string) (ids.ShortID, error) {
	if s == "" {
		return ids.ShortEmpty, nil
	}
	return ids.ShortFromString(s)
}

func parseCategory(s string) (storage.Slot, error) {
	for slot := storage.StrategicSale; slot <= storage.Ecosystem; slot++ {
		if slot.String() == s {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (g *Genesis) AdminAddress() (ids.ShortID, error) {
	return ParseAddress(g.Admin)
}

// ReleaseTables returns the per-bucket release tables indexed by slot.
// Buckets absent from genesis simply never release anything.
func (g *Genesis) ReleaseTables() ([storage.NumBuckets][]uint64, error) {
	var tables [storage.NumBuckets][]uint64
	for _, b := range g.Buckets {
		slot, err := parseCategory(b.Category)
		if err != nil {
			return tables, err
		}
		if tables[slot] != nil {
			return tables, fmt.Errorf("%w: %q", ErrDuplicateCategory, b.Category)
		}
		tables[slot] = b.Releases
	}
	return tables, nil
}

// Load seeds state: initial balances minted under the cap, bucket and
// collection addresses, and the starting discount schedule.
func (g *Genesis) Load(ctx context.Context, mu state.Mutable) error {
	for _, alloc := range g.CustomAllocation {
		addr, err := ParseAddress(alloc.Address)
		if err != nil {
			return err
		}
		if addr == consts.Null {
			return fmt.Errorf("%w: allocation %q", ErrNullAllocation, alloc.Address)
		}
		if err := storage.Mint(ctx, mu, addr, alloc.Balance, g.Cap); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address, alloc.Balance)
		}
	}
	for _, b := range g.Buckets {
		slot, err := parseCategory(b.Category)
		if err != nil {
			return err
		}
		addr, err := ParseAddress(b.Address)
		if err != nil {
			return err
		}
		if addr == consts.Null {
			// Assigned later through the address book.
			continue
		}
		if err := storage.SetAddress(ctx, mu, slot, addr); err != nil {
			return err
		}
	}
	collection, err := ParseAddress(g.Collection)
	if err != nil {
		return err
	}
	if collection != consts.Null {
		if err := storage.SetAddress(ctx, mu, storage.Collection, collection); err != nil {
			return err
		}
	}
	if len(g.DiscountWindows) > 0 {
		if err := storage.ValidateSchedule(g.DiscountWindows); err != nil {
			return err
		}
		if err := storage.SetSchedule(ctx, mu, g.DiscountWindows); err != nil {
			return err
		}
	}
	return storage.SetGenesis(ctx, mu)
}
