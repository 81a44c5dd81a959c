// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/ava-labs/avalanchego/ids"

// Event is emitted by a successful action. Events are only delivered
// after the action's view commits; a failed call emits nothing.
type Event interface {
	Kind() string
}

// TransferEvent covers mints (From is the null address) and burns (To
// is the null address) as well as plain transfers.
type TransferEvent struct {
	From  ids.ShortID `json:"from"`
	To    ids.ShortID `json:"to"`
	Value uint64      `json:"value"`
}

func (*TransferEvent) Kind() string { return "transfer" }

type ApprovalEvent struct {
	Owner   ids.ShortID `json:"owner"`
	Spender ids.ShortID `json:"spender"`
	Value   uint64      `json:"value"`
}

func (*ApprovalEvent) Kind() string { return "approval" }

type PurchaseEvent struct {
	Buyer    ids.ShortID `json:"buyer"`
	App      uint64      `json:"app"`
	Item     uint64      `json:"item"`
	Currency ids.ShortID `json:"currency"`

	// Value is the settled amount, after any discount.
	Value uint64 `json:"value"`
}

func (*PurchaseEvent) Kind() string { return "purchase" }

type UnlockEvent struct {
	Tranche uint64 `json:"tranche"`
	Minted  uint64 `json:"minted"`
}

func (*UnlockEvent) Kind() string { return "unlock" }
