// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"context"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/arcadenet/arcade/actions"
	"github.com/arcadenet/arcade/genesis"
	"github.com/arcadenet/arcade/state"
	"github.com/arcadenet/arcade/storage"
)

var _ actions.Rules = (*Engine)(nil)

type Config struct {
	Genesis *genesis.Genesis

	Log        logging.Logger
	Registerer prometheus.Registerer

	// TokenLedger settles external-token purchases; nil disables that
	// rail.
	TokenLedger actions.TokenLedger

	// Blacklist gates external-token and direct-value purchases; nil
	// means no account is flagged.
	Blacklist actions.Blacklist

	// Clock returns the current time in Unix milliseconds. Overridden
	// in tests.
	Clock func() int64
}

// Engine serializes every call against one ledger. Each submitted
// action runs on a fresh overlay view: an error discards the overlay,
// success commits it atomically, so callers observe all-or-nothing
// semantics without holding any locks themselves.
type Engine struct {
	db      database.Database
	log     logging.Logger
	metrics *metrics
	clock   func() int64

	admin    ids.ShortID
	cap      uint64
	releases [storage.NumBuckets][]uint64

	tokenLedger actions.TokenLedger
	blacklist   actions.Blacklist

	lock sync.RWMutex
	subs []func(actions.Event)
}

func New(ctx context.Context, db database.Database, cfg Config) (*Engine, error) {
	g := cfg.Genesis
	if g == nil {
		g = genesis.Default()
	}
	log := cfg.Log
	if log == nil {
		log = logging.NoLog{}
	}
	r := cfg.Registerer
	if r == nil {
		r = prometheus.NewRegistry()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = func() int64 { return time.Now().UnixMilli() }
	}
	admin, err := g.AdminAddress()
	if err != nil {
		return nil, err
	}
	releases, err := g.ReleaseTables()
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		db:          db,
		log:         log,
		metrics:     m,
		clock:       clock,
		admin:       admin,
		cap:         g.Cap,
		releases:    releases,
		tokenLedger: cfg.TokenLedger,
		blacklist:   cfg.Blacklist,
	}
	loaded, err := storage.HasGenesis(ctx, state.NewView(db))
	if err != nil {
		return nil, err
	}
	if !loaded {
		view := state.NewView(db)
		if err := g.Load(ctx, view); err != nil {
			return nil, err
		}
		if err := view.Commit(); err != nil {
			return nil, err
		}
		supply, err := storage.GetSupply(ctx, state.NewView(db))
		if err != nil {
			return nil, err
		}
		log.Info("loaded genesis",
			zap.Uint64("cap", g.Cap),
			zap.Uint64("supply", supply),
			zap.Stringer("admin", admin),
		)
	}
	return e, nil
}

func (e *Engine) Cap() uint64                         { return e.cap }
func (e *Engine) Admin() ids.ShortID                  { return e.admin }
func (e *Engine) Releases(slot storage.Slot) []uint64 { return e.releases[slot] }
func (e *Engine) TokenLedger() actions.TokenLedger    { return e.tokenLedger }
func (e *Engine) Blacklist() actions.Blacklist        { return e.blacklist }

// Subscribe registers a callback invoked, still under the engine lock,
// for every event of every call that commits.
func (e *Engine) Subscribe(sub func(actions.Event)) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.subs = append(e.subs, sub)
}

// Submit runs one action to completion. On error nothing persists and
// nothing is emitted.
func (e *Engine) Submit(
	ctx context.Context,
	actor ids.ShortID,
	action actions.Action,
) ([]actions.Event, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	view := state.NewView(e.db)
	events, err := action.Execute(ctx, e, view, e.clock(), actor)
	if err != nil {
		e.metrics.rejected.Inc()
		e.log.Debug("action rejected",
			zap.Stringer("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}
	if err := view.Commit(); err != nil {
		return nil, err
	}
	e.metrics.observe(action)
	for _, ev := range events {
		for _, sub := range e.subs {
			sub(ev)
		}
	}
	return events, nil
}

func (e *Engine) BalanceOf(ctx context.Context, owner ids.ShortID) (uint64, error) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return storage.GetBalance(ctx, state.NewView(e.db), owner)
}

func (e *Engine) AllowanceOf(ctx context.Context, owner ids.ShortID, spender ids.ShortID) (uint64, error) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return storage.GetAllowance(ctx, state.NewView(e.db), owner, spender)
}

func (e *Engine) TotalSupply(ctx context.Context) (uint64, error) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return storage.GetSupply(ctx, state.NewView(e.db))
}

// Tranche reports how many unlocks have completed.
func (e *Engine) Tranche(ctx context.Context) (uint64, error) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return storage.GetTranche(ctx, state.NewView(e.db))
}

// ItemPrice reports the listed price; 0 means not for sale.
func (e *Engine) ItemPrice(ctx context.Context, app uint64, item uint64, currency ids.ShortID) (uint64, error) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return storage.GetListing(ctx, state.NewView(e.db), app, item, currency)
}

// Vault reports the base-network value retained by direct-value
// purchases.
func (e *Engine) Vault(ctx context.Context) (uint64, error) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return storage.GetVault(ctx, state.NewView(e.db))
}

func (e *Engine) Address(ctx context.Context, slot storage.Slot) (ids.ShortID, error) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return storage.GetAddress(ctx, state.NewView(e.db), slot)
}

// CurrentDiscount is a mutating read: windows whose end has passed are
// pruned from the stored schedule for good. It therefore takes the
// write lock and commits like any action.
func (e *Engine) CurrentDiscount(ctx context.Context) (uint8, bool, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	view := state.NewView(e.db)
	percent, active, err := storage.DiscountAt(ctx, view, e.clock())
	if err != nil {
		return 0, false, err
	}
	if err := view.Commit(); err != nil {
		return 0, false, err
	}
	return percent, active, nil
}
