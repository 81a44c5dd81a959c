// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/arcadenet/arcade/consts"
	"github.com/arcadenet/arcade/safemath"
	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

var (
	_ Action = (*PurchaseWithToken)(nil)
	_ Action = (*PurchaseWithNative)(nil)
	_ Action = (*PurchaseWithValue)(nil)
)

func lookupPrice(
	ctx context.Context,
	mu state.Mutable,
	app uint64,
	item uint64,
	currency ids.ShortID,
) (uint64, error) {
	price, err := storage.GetListing(ctx, mu, app, item, currency)
	if err != nil {
		return 0, err
	}
	if price == 0 {
		return 0, fmt.Errorf("%w: app=%d, item=%d, currency=%v", ErrItemNotFound, app, item, currency)
	}
	return price, nil
}

func collectionAddress(ctx context.Context, mu state.Mutable) (ids.ShortID, error) {
	collection, err := storage.GetAddress(ctx, mu, storage.Collection)
	if err != nil {
		return ids.ShortEmpty, err
	}
	if collection == consts.Null {
		return ids.ShortEmpty, fmt.Errorf("%w: collection address unset", ErrNullAccount)
	}
	return collection, nil
}

// PurchaseWithToken settles in an external fungible token: the full
// listed price is pulled from the buyer to the collection address via
// the external ledger's transfer-from. No discount applies on this
// rail.
type PurchaseWithToken struct {
	App  uint64 `json:"app"`
	Item uint64 `json:"item"`

	// Token is the external token's address, which is also the
	// listing's currency key.
	Token ids.ShortID `json:"token"`
}

func (p *PurchaseWithToken) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	price, err := lookupPrice(ctx, mu, p.App, p.Item, p.Token)
	if err != nil {
		return nil, err
	}
	flagged, err := isBlacklisted(ctx, r, actor)
	if err != nil {
		return nil, err
	}
	if flagged {
		return nil, fmt.Errorf("%w: %v", ErrBlacklisted, actor)
	}
	ledger := r.TokenLedger()
	if ledger == nil {
		return nil, ErrNoTokenLedger
	}
	collection, err := collectionAddress(ctx, mu)
	if err != nil {
		return nil, err
	}
	if err := ledger.TransferFrom(ctx, p.Token, actor, collection, price); err != nil {
		return nil, err
	}
	return []Event{&PurchaseEvent{
		Buyer:    actor,
		App:      p.App,
		Item:     p.Item,
		Currency: p.Token,
		Value:    price,
	}}, nil
}

// PurchaseWithNative settles in ARCD, minus any active discount:
// price - price*percent/100, truncating. There is deliberately no
// blacklist gate on this rail.
type PurchaseWithNative struct {
	App  uint64 `json:"app"`
	Item uint64 `json:"item"`
}

func (p *PurchaseWithNative) Execute(
	ctx context.Context,
	_ Rules,
	mu state.Mutable,
	now int64,
	actor ids.ShortID,
) ([]Event, error) {
	price, err := lookupPrice(ctx, mu, p.App, p.Item, consts.NativeCurrency)
	if err != nil {
		return nil, err
	}
	percent, active, err := storage.DiscountAt(ctx, mu, now)
	if err != nil {
		return nil, err
	}
	if active {
		scaled, err := smath.Mul64(price, uint64(percent))
		if err != nil {
			return nil, err
		}
		off, err := safemath.Div64(scaled, 100)
		if err != nil {
			return nil, err
		}
		price, err = smath.Sub(price, off)
		if err != nil {
			return nil, err
		}
	}
	collection, err := collectionAddress(ctx, mu)
	if err != nil {
		return nil, err
	}
	if err := storage.SubBalance(ctx, mu, actor, price); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, collection, price); err != nil {
		return nil, err
	}
	return []Event{
		&TransferEvent{From: actor, To: collection, Value: price},
		&PurchaseEvent{
			Buyer:    actor,
			App:      p.App,
			Item:     p.Item,
			Currency: consts.NativeCurrency,
			Value:    price,
		},
	}, nil
}

// PurchaseWithValue settles in attached base-network value, which must
// match the listed price exactly. The value stays in the vault; nothing
// is forwarded.
type PurchaseWithValue struct {
	App  uint64 `json:"app"`
	Item uint64 `json:"item"`

	// Value is the amount attached to the call.
	Value uint64 `json:"value"`
}

func (p *PurchaseWithValue) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	price, err := lookupPrice(ctx, mu, p.App, p.Item, consts.BaseCurrency)
	if err != nil {
		return nil, err
	}
	flagged, err := isBlacklisted(ctx, r, actor)
	if err != nil {
		return nil, err
	}
	if flagged {
		return nil, fmt.Errorf("%w: %v", ErrBlacklisted, actor)
	}
	if p.Value != price {
		return nil, fmt.Errorf("%w: attached=%d, price=%d", ErrPriceMismatch, p.Value, price)
	}
	if err := storage.AddVault(ctx, mu, price); err != nil {
		return nil, err
	}
	return []Event{&PurchaseEvent{
		Buyer:    actor,
		App:      p.App,
		Item:     p.Item,
		Currency: consts.BaseCurrency,
		Value:    price,
	}}, nil
}
