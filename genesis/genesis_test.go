// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

func TestNewOverridesDefaults(t *testing.T) {
	require := require.New(t)

	g, err := New(nil)
	require.NoError(err)
	require.Equal(Default().Cap, g.Cap)

	b, err := json.Marshal(&Genesis{Cap: 1_000})
	require.NoError(err)
	g, err = New(b)
	require.NoError(err)
	require.Equal(uint64(1_000), g.Cap)
}

func TestReleaseTables(t *testing.T) {
	require := require.New(t)

	g := Default()
	g.Buckets = []*Bucket{
		{Category: "team", Releases: []uint64{10, 20, 30}},
		{Category: "ecosystem", Releases: []uint64{5}},
	}
	tables, err := g.ReleaseTables()
	require.NoError(err)
	require.Equal([]uint64{10, 20, 30}, tables[storage.Team])
	require.Equal([]uint64{5}, tables[storage.Ecosystem])
	require.Nil(tables[storage.Marketing])
}

func TestReleaseTablesRejectsBadCategories(t *testing.T) {
	require := require.New(t)

	g := Default()
	g.Buckets = []*Bucket{{Category: "submarine", Releases: []uint64{1}}}
	_, err := g.ReleaseTables()
	require.ErrorIs(err, ErrUnknownCategory)

	g.Buckets = []*Bucket{
		{Category: "team", Releases: []uint64{1}},
		{Category: "team", Releases: []uint64{2}},
	}
	_, err = g.ReleaseTables()
	require.ErrorIs(err, ErrDuplicateCategory)
}

func TestLoad(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	holder := ids.GenerateTestShortID()
	teamAddr := ids.GenerateTestShortID()
	collection := ids.GenerateTestShortID()

	g := Default()
	g.Cap = 1_000
	g.CustomAllocation = []*CustomAllocation{
		{Address: holder.String(), Balance: 400},
	}
	g.Buckets = []*Bucket{
		{Category: "team", Address: teamAddr.String(), Releases: []uint64{10}},
	}
	g.Collection = collection.String()
	g.DiscountWindows = []storage.Window{{Start: 300, End: 400, Percent: 20}}

	db := memdb.New()
	view := state.NewView(db)
	require.NoError(g.Load(ctx, view))
	require.NoError(view.Commit())

	mu := state.NewView(db)
	bal, err := storage.GetBalance(ctx, mu, holder)
	require.NoError(err)
	require.Equal(uint64(400), bal)

	supply, err := storage.GetSupply(ctx, mu)
	require.NoError(err)
	require.Equal(uint64(400), supply)

	addr, err := storage.GetAddress(ctx, mu, storage.Team)
	require.NoError(err)
	require.Equal(teamAddr, addr)

	addr, err = storage.GetAddress(ctx, mu, storage.Collection)
	require.NoError(err)
	require.Equal(collection, addr)

	windows, err := storage.GetSchedule(ctx, mu)
	require.NoError(err)
	require.Equal(g.DiscountWindows, windows)

	loaded, err := storage.HasGenesis(ctx, mu)
	require.NoError(err)
	require.True(loaded)
}

func TestLoadRespectsCap(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	g := Default()
	g.Cap = 100
	g.CustomAllocation = []*CustomAllocation{
		{Address: ids.GenerateTestShortID().String(), Balance: 60},
		{Address: ids.GenerateTestShortID().String(), Balance: 41},
	}
	err := g.Load(ctx, state.NewView(memdb.New()))
	require.ErrorIs(err, storage.ErrCapExceeded)
}
