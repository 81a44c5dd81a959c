// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/arcadenet/arcade/consts"
	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

var _ Action = (*Unlock)(nil)

// Unlock releases the next tranche: every bucket whose release table
// still covers the current tranche index mints its scheduled amount
// into its configured address, then the index advances by one.
// Exhausted buckets are skipped silently; any mint failure aborts the
// whole unlock, index included.
type Unlock struct{}

func (*Unlock) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor != r.Admin() {
		return nil, ErrUnauthorized
	}
	t, err := storage.GetTranche(ctx, mu)
	if err != nil {
		return nil, err
	}
	var (
		events []Event
		minted uint64
	)
	for slot := storage.StrategicSale; slot <= storage.Ecosystem; slot++ {
		table := r.Releases(slot)
		if t >= uint64(len(table)) {
			continue
		}
		amount := table[t]
		if amount == 0 {
			continue
		}
		addr, err := storage.GetAddress(ctx, mu, slot)
		if err != nil {
			return nil, err
		}
		if addr == consts.Null {
			return nil, fmt.Errorf("%w: bucket %s has no address", ErrNullAccount, slot)
		}
		if err := storage.Mint(ctx, mu, addr, amount, r.Cap()); err != nil {
			return nil, fmt.Errorf("unlock tranche %d, bucket %s: %w", t, slot, err)
		}
		minted, err = smath.Add64(minted, amount)
		if err != nil {
			return nil, err
		}
		events = append(events, &TransferEvent{From: consts.Null, To: addr, Value: amount})
	}
	nt, err := smath.Add64(t, 1)
	if err != nil {
		return nil, err
	}
	if err := storage.SetTranche(ctx, mu, nt); err != nil {
		return nil, err
	}
	return append(events, &UnlockEvent{Tranche: t, Minted: minted}), nil
}
