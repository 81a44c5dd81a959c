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

var _ Action = (*Mint)(nil)

type Mint struct {
	To    ids.ShortID `json:"to"`
	Value uint64      `json:"value"`
}

func (m *Mint) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor != r.Admin() {
		return nil, ErrUnauthorized
	}
	if m.To == consts.Null {
		return nil, ErrNullAccount
	}
	if err := storage.Mint(ctx, mu, m.To, m.Value, r.Cap()); err != nil {
		return nil, err
	}
	return []Event{&TransferEvent{From: consts.Null, To: m.To, Value: m.Value}}, nil
}
