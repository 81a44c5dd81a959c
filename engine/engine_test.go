// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/arcadenet/arcade/actions"
	"github.com/arcadenet/arcade/consts"
	"github.com/arcadenet/arcade/genesis"
	"github.com/arcadenet/arcade/storage"
)

type testBlacklist map[ids.ShortID]bool

func (b testBlacklist) IsBlacklisted(_ context.Context, addr ids.ShortID) (bool, error) {
	return b[addr], nil
}

type testLedger struct {
	refuse bool
	debits int
}

func (l *testLedger) TransferFrom(
	context.Context,
	ids.ShortID,
	ids.ShortID,
	ids.ShortID,
	uint64,
) error {
	if l.refuse {
		return context.DeadlineExceeded
	}
	l.debits++
	return nil
}

type fixture struct {
	admin      ids.ShortID
	holder     ids.ShortID
	collection ids.ShortID
	now        int64
}

func newEngine(t *testing.T, f *fixture, g *genesis.Genesis, cfg Config) *Engine {
	t.Helper()
	require := require.New(t)

	if g.Admin == "" {
		g.Admin = f.admin.String()
	}
	if g.Collection == "" {
		g.Collection = f.collection.String()
	}
	cfg.Genesis = g
	cfg.Clock = func() int64 { return f.now }

	e, err := New(context.Background(), memdb.New(), cfg)
	require.NoError(err)
	return e
}

func defaultFixture() *fixture {
	return &fixture{
		admin:      ids.GenerateTestShortID(),
		holder:     ids.GenerateTestShortID(),
		collection: ids.GenerateTestShortID(),
	}
}

func TestGenesisLoadOnce(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()

	g := genesis.Default()
	g.Cap = 1_000
	g.Admin = f.admin.String()
	g.CustomAllocation = []*genesis.CustomAllocation{
		{Address: f.holder.String(), Balance: 400},
	}

	db := memdb.New()
	e, err := New(ctx, db, Config{Genesis: g})
	require.NoError(err)

	supply, err := e.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint64(400), supply)

	// A second engine over the same database must not re-mint.
	e2, err := New(ctx, db, Config{Genesis: g})
	require.NoError(err)
	supply, err = e2.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint64(400), supply)
}

func TestSupplyMatchesBalances(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()
	a := ids.GenerateTestShortID()
	b := ids.GenerateTestShortID()

	g := genesis.Default()
	g.Cap = 10_000
	e := newEngine(t, f, g, Config{})

	accounts := []ids.ShortID{f.holder, f.collection, a, b}
	checkInvariant := func() {
		supply, err := e.TotalSupply(ctx)
		require.NoError(err)
		var sum uint64
		for _, acct := range accounts {
			bal, err := e.BalanceOf(ctx, acct)
			require.NoError(err)
			sum += bal
		}
		require.Equal(supply, sum)
	}

	steps := []struct {
		actor  ids.ShortID
		action actions.Action
		ok     bool
	}{
		{f.admin, &actions.Mint{To: f.holder, Value: 5_000}, true},
		{f.holder, &actions.Transfer{To: a, Value: 1_200}, true},
		{a, &actions.Transfer{To: b, Value: 200}, true},
		{a, &actions.Transfer{To: b, Value: 9_999}, false},
		{f.admin, &actions.Burn{From: f.holder, Value: 800}, true},
		{f.admin, &actions.Mint{To: b, Value: 6_000}, false}, // over cap
	}
	for _, step := range steps {
		_, err := e.Submit(ctx, step.actor, step.action)
		if step.ok {
			require.NoError(err)
		} else {
			require.Error(err)
		}
		checkInvariant()
	}
}

func TestFailedTransferRollsBack(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()

	g := genesis.Default()
	g.Cap = 1_000
	g.CustomAllocation = []*genesis.CustomAllocation{
		{Address: f.holder.String(), Balance: 100},
	}
	e := newEngine(t, f, g, Config{})

	to := ids.GenerateTestShortID()
	_, err := e.Submit(ctx, f.holder, &actions.Transfer{To: to, Value: 101})
	require.ErrorIs(err, storage.ErrInvalidBalance)

	bal, err := e.BalanceOf(ctx, f.holder)
	require.NoError(err)
	require.Equal(uint64(100), bal)
	bal, err = e.BalanceOf(ctx, to)
	require.NoError(err)
	require.Zero(bal)
}

func TestUnlockSequence(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()
	teamAddr := ids.GenerateTestShortID()
	ecoAddr := ids.GenerateTestShortID()

	g := genesis.Default()
	g.Cap = 10_000
	g.Buckets = []*genesis.Bucket{
		{Category: "team", Address: teamAddr.String(), Releases: []uint64{10, 20, 30}},
		{Category: "ecosystem", Address: ecoAddr.String(), Releases: []uint64{5}},
	}
	e := newEngine(t, f, g, Config{})

	// Five unlocks against tables of length 3 and 1: each bucket mints
	// exactly the sum of its table, never more.
	for i := 0; i < 5; i++ {
		_, err := e.Submit(ctx, f.admin, &actions.Unlock{})
		require.NoError(err)
	}

	bal, err := e.BalanceOf(ctx, teamAddr)
	require.NoError(err)
	require.Equal(uint64(60), bal)
	bal, err = e.BalanceOf(ctx, ecoAddr)
	require.NoError(err)
	require.Equal(uint64(5), bal)

	tranche, err := e.Tranche(ctx)
	require.NoError(err)
	require.Equal(uint64(5), tranche)
}

func TestUnlockCapFailureLeavesTrancheUnchanged(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()
	saleAddr := ids.GenerateTestShortID()
	teamAddr := ids.GenerateTestShortID()

	g := genesis.Default()
	g.Cap = 100
	g.Buckets = []*genesis.Bucket{
		{Category: "publicSale", Address: saleAddr.String(), Releases: []uint64{60}},
		{Category: "team", Address: teamAddr.String(), Releases: []uint64{60}},
	}
	e := newEngine(t, f, g, Config{})

	_, err := e.Submit(ctx, f.admin, &actions.Unlock{})
	require.ErrorIs(err, storage.ErrCapExceeded)

	// The aborted unlock left no trace: no counter advance, no partial
	// bucket mint.
	tranche, err := e.Tranche(ctx)
	require.NoError(err)
	require.Zero(tranche)
	bal, err := e.BalanceOf(ctx, saleAddr)
	require.NoError(err)
	require.Zero(bal)
	supply, err := e.TotalSupply(ctx)
	require.NoError(err)
	require.Zero(supply)
}

func TestEventsDeliveredOnCommitOnly(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()

	g := genesis.Default()
	g.Cap = 1_000
	g.CustomAllocation = []*genesis.CustomAllocation{
		{Address: f.holder.String(), Balance: 100},
	}
	e := newEngine(t, f, g, Config{})

	var got []actions.Event
	e.Subscribe(func(ev actions.Event) { got = append(got, ev) })

	to := ids.GenerateTestShortID()
	_, err := e.Submit(ctx, f.holder, &actions.Transfer{To: to, Value: 40})
	require.NoError(err)
	require.Equal([]actions.Event{&actions.TransferEvent{From: f.holder, To: to, Value: 40}}, got)

	_, err = e.Submit(ctx, f.holder, &actions.Transfer{To: to, Value: 1_000})
	require.Error(err)
	require.Len(got, 1)
}

func TestNativePurchaseFlow(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()

	g := genesis.Default()
	g.Cap = 10_000
	g.CustomAllocation = []*genesis.CustomAllocation{
		{Address: f.holder.String(), Balance: 1_000},
	}
	g.DiscountWindows = []storage.Window{{Start: 300, End: 400, Percent: 20}}

	// Blacklisting the buyer must not gate the native rail.
	e := newEngine(t, f, g, Config{Blacklist: testBlacklist{f.holder: true}})

	_, err := e.Submit(ctx, f.admin, &actions.SetItemPrice{
		App:      1,
		Item:     7,
		Currency: consts.NativeCurrency,
		Price:    100,
	})
	require.NoError(err)

	f.now = 350
	_, err = e.Submit(ctx, f.holder, &actions.PurchaseWithNative{App: 1, Item: 7})
	require.NoError(err)
	bal, err := e.BalanceOf(ctx, f.collection)
	require.NoError(err)
	require.Equal(uint64(80), bal)

	f.now = 500
	_, err = e.Submit(ctx, f.holder, &actions.PurchaseWithNative{App: 1, Item: 7})
	require.NoError(err)
	bal, err = e.BalanceOf(ctx, f.collection)
	require.NoError(err)
	require.Equal(uint64(180), bal)
}

func TestBlacklistGatesTokenAndValueRails(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()
	token := ids.GenerateTestShortID()
	ledger := &testLedger{}

	g := genesis.Default()
	g.Cap = 10_000
	e := newEngine(t, f, g, Config{
		TokenLedger: ledger,
		Blacklist:   testBlacklist{f.holder: true},
	})

	_, err := e.Submit(ctx, f.admin, &actions.SetItemPrice{App: 1, Item: 7, Currency: token, Price: 50})
	require.NoError(err)
	_, err = e.Submit(ctx, f.admin, &actions.SetItemPrice{App: 1, Item: 7, Currency: consts.BaseCurrency, Price: 50})
	require.NoError(err)

	_, err = e.Submit(ctx, f.holder, &actions.PurchaseWithToken{App: 1, Item: 7, Token: token})
	require.ErrorIs(err, actions.ErrBlacklisted)
	require.Zero(ledger.debits)

	_, err = e.Submit(ctx, f.holder, &actions.PurchaseWithValue{App: 1, Item: 7, Value: 50})
	require.ErrorIs(err, actions.ErrBlacklisted)

	// A clean buyer sails through both rails.
	buyer := ids.GenerateTestShortID()
	_, err = e.Submit(ctx, buyer, &actions.PurchaseWithToken{App: 1, Item: 7, Token: token})
	require.NoError(err)
	require.Equal(1, ledger.debits)

	_, err = e.Submit(ctx, buyer, &actions.PurchaseWithValue{App: 1, Item: 7, Value: 50})
	require.NoError(err)
	vault, err := e.Vault(ctx)
	require.NoError(err)
	require.Equal(uint64(50), vault)
}

func TestCurrentDiscountPrunes(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()

	g := genesis.Default()
	g.DiscountWindows = []storage.Window{
		{Start: 500, End: 600, Percent: 5},
		{Start: 300, End: 400, Percent: 20},
	}
	e := newEngine(t, f, g, Config{})

	f.now = 350
	pct, active, err := e.CurrentDiscount(ctx)
	require.NoError(err)
	require.True(active)
	require.Equal(uint8(20), pct)

	f.now = 450
	pct, active, err = e.CurrentDiscount(ctx)
	require.NoError(err)
	require.False(active)
	require.Zero(pct)

	// The expired window is gone even if time were to rewind.
	f.now = 350
	_, active, err = e.CurrentDiscount(ctx)
	require.NoError(err)
	require.False(active)
}

func TestApproveThenTransferFrom(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f := defaultFixture()
	spender := ids.GenerateTestShortID()
	to := ids.GenerateTestShortID()

	g := genesis.Default()
	g.Cap = 1_000
	g.CustomAllocation = []*genesis.CustomAllocation{
		{Address: f.holder.String(), Balance: 500},
	}
	e := newEngine(t, f, g, Config{})

	_, err := e.Submit(ctx, f.holder, &actions.Approve{Spender: spender, Value: 100})
	require.NoError(err)
	_, err = e.Submit(ctx, f.holder, &actions.Approve{Spender: spender, Value: 60})
	require.NoError(err)

	allowance, err := e.AllowanceOf(ctx, f.holder, spender)
	require.NoError(err)
	require.Equal(uint64(60), allowance)

	_, err = e.Submit(ctx, spender, &actions.TransferFrom{From: f.holder, To: to, Value: 60})
	require.NoError(err)

	allowance, err = e.AllowanceOf(ctx, f.holder, spender)
	require.NoError(err)
	require.Zero(allowance)
	bal, err := e.BalanceOf(ctx, to)
	require.NoError(err)
	require.Equal(uint64(60), bal)
}
