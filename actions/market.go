// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/arcadenet/arcade/consts"
	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

var (
	_ Action = (*SetItemPrice)(nil)
	_ Action = (*DeleteItem)(nil)
	_ Action = (*SetAddresses)(nil)
)

// SetItemPrice lists an item under one settlement currency. A zero
// price delists it.
type SetItemPrice struct {
	App      uint64      `json:"app"`
	Item     uint64      `json:"item"`
	Currency ids.ShortID `json:"currency"`
	Price    uint64      `json:"price"`
}

func (p *SetItemPrice) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor != r.Admin() {
		return nil, ErrUnauthorized
	}
	if err := storage.SetListing(ctx, mu, p.App, p.Item, p.Currency, p.Price); err != nil {
		return nil, err
	}
	return nil, nil
}

type DeleteItem struct {
	App      uint64      `json:"app"`
	Item     uint64      `json:"item"`
	Currency ids.ShortID `json:"currency"`
}

func (d *DeleteItem) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor != r.Admin() {
		return nil, ErrUnauthorized
	}
	if err := storage.RemoveListing(ctx, mu, d.App, d.Item, d.Currency); err != nil {
		return nil, err
	}
	return nil, nil
}

// SetAddresses rewrites address book slots per-field: a zero field
// means "leave that slot unchanged", never "clear it".
type SetAddresses struct {
	StrategicSale ids.ShortID `json:"strategicSale"`
	PrivateSale   ids.ShortID `json:"privateSale"`
	PublicSale    ids.ShortID `json:"publicSale"`
	Team          ids.ShortID `json:"team"`
	Advisor       ids.ShortID `json:"advisor"`
	Marketing     ids.ShortID `json:"marketing"`
	Ecosystem     ids.ShortID `json:"ecosystem"`
	Collection    ids.ShortID `json:"collection"`
}

func (s *SetAddresses) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor != r.Admin() {
		return nil, ErrUnauthorized
	}
	slots := []struct {
		slot storage.Slot
		addr ids.ShortID
	}{
		{storage.StrategicSale, s.StrategicSale},
		{storage.PrivateSale, s.PrivateSale},
		{storage.PublicSale, s.PublicSale},
		{storage.Team, s.Team},
		{storage.Advisor, s.Advisor},
		{storage.Marketing, s.Marketing},
		{storage.Ecosystem, s.Ecosystem},
		{storage.Collection, s.Collection},
	}
	for _, e := range slots {
		if e.addr == consts.Null {
			continue
		}
		if err := storage.SetAddress(ctx, mu, e.slot, e.addr); err != nil {
			return nil, err
		}
	}
	return nil, nil
}
