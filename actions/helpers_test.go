// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

type testRules struct {
	cap      uint64
	admin    ids.ShortID
	releases [storage.NumBuckets][]uint64
	ledger   TokenLedger
	flags    map[ids.ShortID]bool
}

func (r *testRules) Cap() uint64 {
	if r.cap == 0 {
		return ^uint64(0)
	}
	return r.cap
}

func (r *testRules) Admin() ids.ShortID               { return r.admin }
func (r *testRules) Releases(s storage.Slot) []uint64 { return r.releases[s] }
func (r *testRules) TokenLedger() TokenLedger         { return r.ledger }
func (r *testRules) Blacklist() Blacklist             { return r }

func (r *testRules) IsBlacklisted(_ context.Context, addr ids.ShortID) (bool, error) {
	return r.flags[addr], nil
}

type ledgerCall struct {
	token  ids.ShortID
	from   ids.ShortID
	to     ids.ShortID
	amount uint64
}

type testLedger struct {
	refuse bool
	calls  []ledgerCall
}

var errRefused = errors.New("debit refused")

func (l *testLedger) TransferFrom(
	_ context.Context,
	token ids.ShortID,
	from ids.ShortID,
	to ids.ShortID,
	amount uint64,
) error {
	if l.refuse {
		return errRefused
	}
	l.calls = append(l.calls, ledgerCall{token, from, to, amount})
	return nil
}

func newTestView(t *testing.T) *state.View {
	t.Helper()
	return state.NewView(memdb.New())
}
