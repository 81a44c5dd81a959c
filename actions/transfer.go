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

var _ Action = (*Transfer)(nil)

type Transfer struct {
	// To is the recipient of the [Value].
	To ids.ShortID `json:"to"`

	// Value is moved from the actor to [To].
	Value uint64 `json:"value"`
}

func (t *Transfer) Execute(
	ctx context.Context,
	_ Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if t.To == consts.Null {
		return nil, ErrNullAccount
	}
	// Debit before credit: either both legs land or neither does.
	if err := storage.SubBalance(ctx, mu, actor, t.Value); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, t.To, t.Value); err != nil {
		return nil, err
	}
	return []Event{&TransferEvent{From: actor, To: t.To, Value: t.Value}}, nil
}
