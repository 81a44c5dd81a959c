// Copyright (C) 2024, Arcade Network. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/arcadenet/arcade/state"
)

func innerGetUint64(v []byte, err error) (uint64, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return binary.BigEndian.Uint64(v), true, nil
}

// If an owner has no record, their balance is 0.
func GetBalance(ctx context.Context, im state.Immutable, owner ids.ShortID) (uint64, error) {
	bal, _, err := innerGetUint64(im.GetValue(ctx, BalanceKey(owner)))
	return bal, err
}

func SetBalance(
	ctx context.Context,
	mu state.Mutable,
	owner ids.ShortID,
	balance uint64,
) error {
	return mu.Insert(ctx, BalanceKey(owner), binary.BigEndian.AppendUint64(nil, balance))
}

func AddBalance(
	ctx context.Context,
	mu state.Mutable,
	owner ids.ShortID,
	amount uint64,
) error {
	bal, err := GetBalance(ctx, mu, owner)
	if err != nil {
		return err
	}
	nbal, err := smath.Add64(bal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not add balance (bal=%d, addr=%v, amount=%d)",
			ErrInvalidBalance,
			bal,
			owner,
			amount,
		)
	}
	return SetBalance(ctx, mu, owner, nbal)
}

func SubBalance(
	ctx context.Context,
	mu state.Mutable,
	owner ids.ShortID,
	amount uint64,
) error {
	bal, err := GetBalance(ctx, mu, owner)
	if err != nil {
		return err
	}
	nbal, err := smath.Sub(bal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%d, addr=%v, amount=%d)",
			ErrInvalidBalance,
			bal,
			owner,
			amount,
		)
	}
	if nbal == 0 {
		// If there is no balance left, we should delete the record instead of
		// setting it to 0.
		return mu.Remove(ctx, BalanceKey(owner))
	}
	return SetBalance(ctx, mu, owner, nbal)
}

func GetSupply(ctx context.Context, im state.Immutable) (uint64, error) {
	supply, _, err := innerGetUint64(im.GetValue(ctx, supplyKey))
	return supply, err
}

func setSupply(ctx context.Context, mu state.Mutable, supply uint64) error {
	return mu.Insert(ctx, supplyKey, binary.BigEndian.AppendUint64(nil, supply))
}

// AddSupply enforces the cap before any mutation: a rejected mint must
// leave both supply and balances untouched.
func AddSupply(
	ctx context.Context,
	mu state.Mutable,
	amount uint64,
	cap uint64,
) error {
	supply, err := GetSupply(ctx, mu)
	if err != nil {
		return err
	}
	nsupply, err := smath.Add64(supply, amount)
	if err != nil {
		return fmt.Errorf("%w: supply=%d, amount=%d", ErrCapExceeded, supply, amount)
	}
	if nsupply > cap {
		return fmt.Errorf(
			"%w: supply=%d, amount=%d, cap=%d",
			ErrCapExceeded,
			supply,
			amount,
			cap,
		)
	}
	return setSupply(ctx, mu, nsupply)
}

func SubSupply(ctx context.Context, mu state.Mutable, amount uint64) error {
	supply, err := GetSupply(ctx, mu)
	if err != nil {
		return err
	}
	nsupply, err := smath.Sub(supply, amount)
	if err != nil {
		return fmt.Errorf("%w: supply=%d, amount=%d", ErrInvalidBalance, supply, amount)
	}
	return setSupply(ctx, mu, nsupply)
}

// Mint credits [to] and grows supply under [cap] as one unit.
func Mint(
	ctx context.Context,
	mu state.Mutable,
	to ids.ShortID,
	amount uint64,
	cap uint64,
) error {
	if err := AddSupply(ctx, mu, amount, cap); err != nil {
		return err
	}
	return AddBalance(ctx, mu, to, amount)
}

// Burn debits [from] and shrinks supply as one unit.
func Burn(
	ctx context.Context,
	mu state.Mutable,
	from ids.ShortID,
	amount uint64,
) error {
	if err := SubBalance(ctx, mu, from, amount); err != nil {
		return err
	}
	return SubSupply(ctx, mu, amount)
}

func GetAllowance(
	ctx context.Context,
	im state.Immutable,
	owner ids.ShortID,
	spender ids.ShortID,
) (uint64, error) {
	allowance, _, err := innerGetUint64(im.GetValue(ctx, AllowanceKey(owner, spender)))
	return allowance, err
}

// SetAllowance overwrites. Approval is not additive.
func SetAllowance(
	ctx context.Context,
	mu state.Mutable,
	owner ids.ShortID,
	spender ids.ShortID,
	amount uint64,
) error {
	k := AllowanceKey(owner, spender)
	if amount == 0 {
		return mu.Remove(ctx, k)
	}
	return mu.Insert(ctx, k, binary.BigEndian.AppendUint64(nil, amount))
}

// SubAllowance debits what an owner authorized a spender to move and
// returns the remaining allowance.
func SubAllowance(
	ctx context.Context,
	mu state.Mutable,
	owner ids.ShortID,
	spender ids.ShortID,
	amount uint64,
) (uint64, error) {
	allowance, err := GetAllowance(ctx, mu, owner, spender)
	if err != nil {
		return 0, err
	}
	nallowance, err := smath.Sub(allowance, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: allowance=%d, owner=%v, spender=%v, amount=%d",
			ErrInsufficientAllowance,
			allowance,
			owner,
			spender,
			amount,
		)
	}
	if err := SetAllowance(ctx, mu, owner, spender, nallowance); err != nil {
		return 0, err
	}
	return nallowance, nil
}
