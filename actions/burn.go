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

var _ Action = (*Burn)(nil)

type Burn struct {
	From  ids.ShortID `json:"from"`
	Value uint64      `json:"value"`
}

func (b *Burn) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor != r.Admin() {
		return nil, ErrUnauthorized
	}
	if err := storage.Burn(ctx, mu, b.From, b.Value); err != nil {
		return nil, err
	}
	return []Event{&TransferEvent{From: b.From, To: consts.Null, Value: b.Value}}, nil
}
