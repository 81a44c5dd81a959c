// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/arcadenet/arcade/state"
)

// A missing listing and a zero price both mean "not for sale".
func GetListing(
	ctx context.Context,
	im state.Immutable,
	app uint64,
	item uint64,
	currency ids.ShortID,
) (uint64, error) {
	price, _, err := innerGetUint64(im.GetValue(ctx, ListingKey(app, item, currency)))
	return price, err
}

func SetListing(
	ctx context.Context,
	mu state.Mutable,
	app uint64,
	item uint64,
	currency ids.ShortID,
	price uint64,
) error {
	k := ListingKey(app, item, currency)
	if price == 0 {
		return mu.Remove(ctx, k)
	}
	return mu.Insert(ctx, k, binary.BigEndian.AppendUint64(nil, price))
}

func RemoveListing(
	ctx context.Context,
	mu state.Mutable,
	app uint64,
	item uint64,
	currency ids.ShortID,
) error {
	return mu.Remove(ctx, ListingKey(app, item, currency))
}

// An unset slot reads as the empty address.
func GetAddress(ctx context.Context, im state.Immutable, slot Slot) (ids.ShortID, error) {
	v, err := im.GetValue(ctx, AddressKey(slot))
	if errors.Is(err, database.ErrNotFound) {
		return ids.ShortEmpty, nil
	}
	if err != nil {
		return ids.ShortEmpty, err
	}
	addr, err := ids.ToShortID(v)
	if err != nil {
		return ids.ShortEmpty, fmt.Errorf("corrupt address book slot %s: %w", slot, err)
	}
	return addr, nil
}

func SetAddress(ctx context.Context, mu state.Mutable, slot Slot, addr ids.ShortID) error {
	return mu.Insert(ctx, AddressKey(slot), addr[:])
}

func GetTranche(ctx context.Context, im state.Immutable) (uint64, error) {
	t, _, err := innerGetUint64(im.GetValue(ctx, trancheKey))
	return t, err
}

func SetTranche(ctx context.Context, mu state.Mutable, t uint64) error {
	return mu.Insert(ctx, trancheKey, binary.BigEndian.AppendUint64(nil, t))
}

// GetVault reports the base-network value retained by direct-value
// purchases.
func GetVault(ctx context.Context, im state.Immutable) (uint64, error) {
	v, _, err := innerGetUint64(im.GetValue(ctx, vaultKey))
	return v, err
}

func AddVault(ctx context.Context, mu state.Mutable, amount uint64) error {
	v, err := GetVault(ctx, mu)
	if err != nil {
		return err
	}
	nv, err := smath.Add64(v, amount)
	if err != nil {
		return fmt.Errorf("%w: vault=%d, amount=%d", ErrInvalidBalance, v, amount)
	}
	return mu.Insert(ctx, vaultKey, binary.BigEndian.AppendUint64(nil, nv))
}

func HasGenesis(ctx context.Context, im state.Immutable) (bool, error) {
	_, err := im.GetValue(ctx, genesisKey)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func SetGenesis(ctx context.Context, mu state.Mutable) error {
	return mu.Insert(ctx, genesisKey, []byte{0x1})
}
