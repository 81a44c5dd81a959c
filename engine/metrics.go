// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arcadenet/arcade/actions"
)

type metrics struct {
	transfer     prometheus.Counter
	approve      prometheus.Counter
	transferFrom prometheus.Counter

	mint   prometheus.Counter
	burn   prometheus.Counter
	unlock prometheus.Counter

	scheduleReset prometheus.Counter
	setItemPrice  prometheus.Counter
	deleteItem    prometheus.Counter
	setAddresses  prometheus.Counter

	purchaseToken  prometheus.Counter
	purchaseNative prometheus.Counter
	purchaseValue  prometheus.Counter

	rejected prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		transfer: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "transfer",
			Help:      "number of transfer actions",
		}),
		approve: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "approve",
			Help:      "number of approve actions",
		}),
		transferFrom: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "transfer_from",
			Help:      "number of transfer from actions",
		}),
		mint: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "mint",
			Help:      "number of mint actions",
		}),
		burn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "burn",
			Help:      "number of burn actions",
		}),
		unlock: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "unlock",
			Help:      "number of unlock actions",
		}),
		scheduleReset: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "reset_discount_schedule",
			Help:      "number of discount schedule resets",
		}),
		setItemPrice: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "set_item_price",
			Help:      "number of set item price actions",
		}),
		deleteItem: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "delete_item",
			Help:      "number of delete item actions",
		}),
		setAddresses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "set_addresses",
			Help:      "number of set addresses actions",
		}),
		purchaseToken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "purchase_with_token",
			Help:      "number of external token purchases",
		}),
		purchaseNative: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "purchase_with_native",
			Help:      "number of native token purchases",
		}),
		purchaseValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "purchase_with_value",
			Help:      "number of direct value purchases",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "rejected",
			Help:      "number of rejected actions",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.transfer),
		r.Register(m.approve),
		r.Register(m.transferFrom),

		r.Register(m.mint),
		r.Register(m.burn),
		r.Register(m.unlock),

		r.Register(m.scheduleReset),
		r.Register(m.setItemPrice),
		r.Register(m.deleteItem),
		r.Register(m.setAddresses),

		r.Register(m.purchaseToken),
		r.Register(m.purchaseNative),
		r.Register(m.purchaseValue),

		r.Register(m.rejected),
	)
	return m, errs.Err
}

func (m *metrics) observe(a actions.Action) {
	switch a.(type) {
	case *actions.Transfer:
		m.transfer.Inc()
	case *actions.Approve:
		m.approve.Inc()
	case *actions.TransferFrom:
		m.transferFrom.Inc()
	case *actions.Mint:
		m.mint.Inc()
	case *actions.Burn:
		m.burn.Inc()
	case *actions.Unlock:
		m.unlock.Inc()
	case *actions.ResetDiscountSchedule:
		m.scheduleReset.Inc()
	case *actions.SetItemPrice:
		m.setItemPrice.Inc()
	case *actions.DeleteItem:
		m.deleteItem.Inc()
	case *actions.SetAddresses:
		m.setAddresses.Inc()
	case *actions.PurchaseWithToken:
		m.purchaseToken.Inc()
	case *actions.PurchaseWithNative:
		m.purchaseNative.Inc()
	case *actions.PurchaseWithValue:
		m.purchaseValue.Inc()
	}
}
