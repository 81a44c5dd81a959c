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

var _ Action = (*TransferFrom)(nil)

// TransferFrom moves [Value] from [From] to [To] on the actor's
// allowance. The allowance debit rides in the same call: if it
// underflows, the transfer legs are discarded with it.
type TransferFrom struct {
	From  ids.ShortID `json:"from"`
	To    ids.ShortID `json:"to"`
	Value uint64      `json:"value"`
}

func (t *TransferFrom) Execute(
	ctx context.Context,
	_ Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if t.To == consts.Null {
		return nil, ErrNullAccount
	}
	if err := storage.SubBalance(ctx, mu, t.From, t.Value); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, t.To, t.Value); err != nil {
		return nil, err
	}
	remaining, err := storage.SubAllowance(ctx, mu, t.From, actor, t.Value)
	if err != nil {
		return nil, err
	}
	return []Event{
		&TransferEvent{From: t.From, To: t.To, Value: t.Value},
		&ApprovalEvent{Owner: t.From, Spender: actor, Value: remaining},
	}, nil
}
