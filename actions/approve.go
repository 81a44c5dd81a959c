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

var _ Action = (*Approve)(nil)

// Approve overwrites the allowance, it does not add to it. A spender
// who observes the old allowance and spends between two approvals can
// use both values; owners who need to change a live allowance should
// approve 0 first and confirm no spend slipped in.
type Approve struct {
	Spender ids.ShortID `json:"spender"`
	Value   uint64      `json:"value"`
}

func (a *Approve) Execute(
	ctx context.Context,
	_ Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor == consts.Null || a.Spender == consts.Null {
		return nil, ErrNullAccount
	}
	if err := storage.SetAllowance(ctx, mu, actor, a.Spender, a.Value); err != nil {
		return nil, err
	}
	return []Event{&ApprovalEvent{Owner: actor, Spender: a.Spender, Value: a.Value}}, nil
}
