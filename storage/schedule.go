// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/arcadenet/arcade/consts"
	"github.com/arcadenet/arcade/state"
)

// Window is one time-boxed discount. Windows are stored newest-first:
// both Start and End strictly decrease along the stored slice, so the
// last element is the earliest window.
type Window struct {
	Start   int64 `json:"start"`
	End     int64 `json:"end"`
	Percent uint8 `json:"percent"`
}

const windowLen = consts.Int64Len*2 + consts.Uint8Len

// ValidateSchedule rejects any sequence that is not strictly decreasing
// in both bounds or that carries a percent outside [1,100]. The ordering
// is enforced on write, never just assumed on read.
func ValidateSchedule(windows []Window) error {
	for i, w := range windows {
		if w.Percent == 0 || w.Percent > 100 {
			return fmt.Errorf("%w: percent=%d at index %d", ErrInvalidSchedule, w.Percent, i)
		}
		if w.End < w.Start {
			return fmt.Errorf("%w: end=%d before start=%d at index %d", ErrInvalidSchedule, w.End, w.Start, i)
		}
		if i == 0 {
			continue
		}
		prev := windows[i-1]
		if w.Start >= prev.Start || w.End >= prev.End {
			return fmt.Errorf(
				"%w: window %d (%d,%d) not strictly before window %d (%d,%d)",
				ErrInvalidSchedule,
				i,
				w.Start,
				w.End,
				i-1,
				prev.Start,
				prev.End,
			)
		}
	}
	return nil
}

func GetSchedule(ctx context.Context, im state.Immutable) ([]Window, error) {
	v, err := im.GetValue(ctx, scheduleKey)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(v)%windowLen != 0 {
		return nil, fmt.Errorf("%w: corrupt schedule (%d bytes)", ErrInvalidSchedule, len(v))
	}
	windows := make([]Window, 0, len(v)/windowLen)
	for i := 0; i < len(v); i += windowLen {
		windows = append(windows, Window{
			Start:   int64(binary.BigEndian.Uint64(v[i:])),
			End:     int64(binary.BigEndian.Uint64(v[i+consts.Int64Len:])),
			Percent: v[i+consts.Int64Len*2],
		})
	}
	return windows, nil
}

// SetSchedule replaces the stored sequence wholesale. Callers validate
// first; this only packs.
func SetSchedule(ctx context.Context, mu state.Mutable, windows []Window) error {
	if len(windows) == 0 {
		return mu.Remove(ctx, scheduleKey)
	}
	v := make([]byte, 0, len(windows)*windowLen)
	for _, w := range windows {
		v = binary.BigEndian.AppendUint64(v, uint64(w.Start))
		v = binary.BigEndian.AppendUint64(v, uint64(w.End))
		v = append(v, w.Percent)
	}
	return mu.Insert(ctx, scheduleKey, v)
}

// DiscountAt returns the active percent at [now], if any.
//
// This is a mutating read: windows whose end has passed are pruned from
// the stored sequence permanently. Each iteration either returns or
// shrinks the sequence, so it terminates.
func DiscountAt(ctx context.Context, mu state.Mutable, now int64) (uint8, bool, error) {
	windows, err := GetSchedule(ctx, mu)
	if err != nil {
		return 0, false, err
	}
	var (
		percent uint8
		active  bool
		pruned  bool
	)
	for len(windows) > 0 {
		w := windows[len(windows)-1]
		if now < w.Start {
			break
		}
		if now <= w.End {
			percent = w.Percent
			active = true
			break
		}
		// Permanently expired.
		windows = windows[:len(windows)-1]
		pruned = true
	}
	if pruned {
		if err := SetSchedule(ctx, mu, windows); err != nil {
			return 0, false, err
		}
	}
	return percent, active, nil
}
