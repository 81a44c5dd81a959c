// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

var _ Action = (*ResetDiscountSchedule)(nil)

// ResetDiscountSchedule replaces the stored discount windows wholesale.
// The three sequences are parallel and must be strictly decreasing in
// both bounds front-to-back (newest window first); a rejected reset
// leaves the prior schedule intact.
type ResetDiscountSchedule struct {
	Starts   []int64 `json:"starts"`
	Ends     []int64 `json:"ends"`
	Percents []uint8 `json:"percents"`
}

func (s *ResetDiscountSchedule) Execute(
	ctx context.Context,
	r Rules,
	mu state.Mutable,
	_ int64,
	actor ids.ShortID,
) ([]Event, error) {
	if actor != r.Admin() {
		return nil, ErrUnauthorized
	}
	if len(s.Starts) != len(s.Ends) || len(s.Starts) != len(s.Percents) {
		return nil, fmt.Errorf(
			"%w: mismatched lengths (starts=%d, ends=%d, percents=%d)",
			storage.ErrInvalidSchedule,
			len(s.Starts),
			len(s.Ends),
			len(s.Percents),
		)
	}
	windows := make([]storage.Window, len(s.Starts))
	for i := range s.Starts {
		windows[i] = storage.Window{
			Start:   s.Starts[i],
			End:     s.Ends[i],
			Percent: s.Percents[i],
		}
	}
	if err := storage.ValidateSchedule(windows); err != nil {
		return nil, err
	}
	if err := storage.SetSchedule(ctx, mu, windows); err != nil {
		return nil, err
	}
	return nil, nil
}
