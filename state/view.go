// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*View)(nil)

type op struct {
	value  []byte
	remove bool
}

// View buffers mutations over a backing database. Nothing touches the
// database until Commit; dropping a View discards every buffered change,
// which is what gives each engine call its all-or-nothing guarantee.
type View struct {
	db database.Database

	changes map[string]*op
}

func NewView(db database.Database) *View {
	return &View{db: db, changes: make(map[string]*op)}
}

func (v *View) GetValue(_ context.Context, key []byte) ([]byte, error) {
	if o, ok := v.changes[string(key)]; ok {
		if o.remove {
			return nil, database.ErrNotFound
		}
		return o.value, nil
	}
	return v.db.Get(key)
}

func (v *View) Insert(_ context.Context, key []byte, value []byte) error {
	v.changes[string(key)] = &op{value: value}
	return nil
}

func (v *View) Remove(_ context.Context, key []byte) error {
	v.changes[string(key)] = &op{remove: true}
	return nil
}

// Commit applies all buffered changes in one batch.
func (v *View) Commit() error {
	b := v.db.NewBatch()
	for key, o := range v.changes {
		if o.remove {
			if err := b.Delete([]byte(key)); err != nil {
				return err
			}
			continue
		}
		if err := b.Put([]byte(key), o.value); err != nil {
			return err
		}
	}
	return b.Write()
}
