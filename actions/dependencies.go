// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

// Action is one ledger operation. Execute runs against a transactional
// view: any returned error discards every mutation the action made.
type Action interface {
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		now int64,
		actor ids.ShortID,
	) ([]Event, error)
}

// Rules exposes the fixed parameters and external collaborators an
// action may consult.
type Rules interface {
	Cap() uint64
	Admin() ids.ShortID

	// Releases returns the fixed per-tranche release table for a bucket.
	Releases(storage.Slot) []uint64

	// TokenLedger may be nil when no external token rail is wired.
	TokenLedger() TokenLedger

	// Blacklist may be nil, in which case no account is flagged.
	Blacklist() Blacklist
}

// TokenLedger is an external fungible-token ledger. TransferFrom debits
// [from] in favor of [to] on the ledger identified by [token], drawing
// on an allowance previously granted to this engine.
type TokenLedger interface {
	TransferFrom(ctx context.Context, token ids.ShortID, from ids.ShortID, to ids.ShortID, amount uint64) error
}

// Blacklist is a read-only flag store.
type Blacklist interface {
	IsBlacklisted(ctx context.Context, addr ids.ShortID) (bool, error)
}

func isBlacklisted(ctx context.Context, r Rules, addr ids.ShortID) (bool, error) {
	bl := r.Blacklist()
	if bl == nil {
		return false, nil
	}
	return bl.IsBlacklisted(ctx, addr)
}
